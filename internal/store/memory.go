package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bedrockrag/internal/embeddings"
)

type memoryEntry struct {
	doc Document
	vec []float32
}

// MemoryStore keeps documents and their cached embeddings in memory for
// the lifetime of the process.
type MemoryStore struct {
	mu       sync.Mutex
	provider embeddings.Provider
	entries  []memoryEntry
}

func NewMemoryStore(provider embeddings.Provider) *MemoryStore {
	return &MemoryStore{provider: provider}
}

// AddDocuments embeds every text first and only then commits the batch,
// so a failed embedding call inserts nothing and does not advance the id
// sequence.
func (s *MemoryStore) AddDocuments(ctx context.Context, texts []string) error {
	vecs := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, err := s.provider.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("embed document: %w", err)
		}
		vecs = append(vecs, vec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, text := range texts {
		s.entries = append(s.entries, memoryEntry{
			doc: Document{
				ID:   fmt.Sprintf("doc_%d", len(s.entries)),
				Text: text,
			},
			vec: vecs[i],
		})
	}
	return nil
}

// Query returns up to topK documents ordered by descending cosine
// similarity to the query embedding.
func (s *MemoryStore) Query(ctx context.Context, text string, topK int) ([]Document, error) {
	if topK <= 0 {
		topK = 5
	}

	qvec, err := s.provider.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	type scored struct {
		doc   Document
		score float64
	}
	ranked := make([]scored, 0, len(s.entries))
	for _, e := range s.entries {
		score, err := cosine(qvec, e.vec)
		if err != nil {
			return nil, fmt.Errorf("rank %s: %w", e.doc.ID, err)
		}
		ranked = append(ranked, scored{doc: e.doc, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]Document, 0, topK)
	for _, r := range ranked[:topK] {
		out = append(out, r.doc)
	}
	return out, nil
}

// ListAll returns the current contents in insertion order.
func (s *MemoryStore) ListAll(ctx context.Context) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Document, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.doc)
	}
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
