package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bedrockrag/internal/bedrock"
	"bedrockrag/internal/embeddings"
	"bedrockrag/internal/rag"
)

type Handler struct {
	ragService *rag.Service
	catalog    *bedrock.Client
}

func NewHandler(ragService *rag.Service, catalog *bedrock.Client) *Handler {
	return &Handler{ragService: ragService, catalog: catalog}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Models returns the filtered chat-model catalog. A failed listing is a
// bad gateway with a diagnostic, never a crash.
func (h *Handler) Models(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	models, err := h.catalog.ListChatModels(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, models)
}

type askRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"topK,omitempty"`
	RAG      *bool  `json:"rag,omitempty"`
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	useRAG := req.RAG == nil || *req.RAG
	topK := req.TopK
	if topK <= 0 {
		topK = 3
	}

	var (
		answer *rag.Answer
		err    error
	)
	if useRAG {
		answer, err = h.ragService.AnswerWithContext(ctx, req.Question, topK)
	} else {
		answer, err = h.ragService.AnswerWithoutContext(ctx, req.Question)
	}
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, rag.ErrGenerationFailed) || errors.Is(err, embeddings.ErrUnavailable) {
			status = http.StatusBadGateway
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, answer)
}

type addDocumentsRequest struct {
	Texts []string `json:"texts"`
}

func (h *Handler) AddDocuments(w http.ResponseWriter, r *http.Request) {
	var req addDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if len(req.Texts) == 0 {
		http.Error(w, "texts is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := h.ragService.AddDocuments(ctx, req.Texts); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]int{"added": len(req.Texts)})
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.ragService.ListDocuments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, docs)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
