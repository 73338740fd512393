package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	wl "github.com/abadojack/whatlanggo"

	"bedrockrag/internal/store"
)

const promptTemplate = `Given the following context, please answer the question.

Context: %s

Question: %s

Based on the provided context, my answer is:`

type Service struct {
	store     store.Store
	generator Generator
}

func NewService(st store.Store, generator Generator) *Service {
	return &Service{
		store:     st,
		generator: generator,
	}
}

// AnswerWithContext retrieves the topK most similar documents, folds them
// into the context prompt and forwards the composed prompt to the
// generator.
func (s *Service) AnswerWithContext(ctx context.Context, query string, topK int) (*Answer, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, errors.New("query is required")
	}

	docs, err := s.store.Query(ctx, q, topK)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		texts = append(texts, d.Text)
	}
	contextBlock := strings.Join(texts, "\n")

	prompt := fmt.Sprintf(promptTemplate, contextBlock, q)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return &Answer{
		Text:      text,
		Retrieved: docs,
		QueryLang: detectLang(q),
	}, nil
}

// AnswerWithoutContext bypasses retrieval and sends the query as-is.
func (s *Service) AnswerWithoutContext(ctx context.Context, query string) (*Answer, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, errors.New("query is required")
	}

	text, err := s.generator.Generate(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return &Answer{Text: text, QueryLang: detectLang(q)}, nil
}

// AddDocuments and ListDocuments expose the store through the service so
// the shell and the HTTP surface share one entry point.
func (s *Service) AddDocuments(ctx context.Context, texts []string) error {
	return s.store.AddDocuments(ctx, texts)
}

func (s *Service) ListDocuments(ctx context.Context) ([]store.Document, error) {
	return s.store.ListAll(ctx)
}

func detectLang(s string) string {
	info := wl.Detect(s)
	switch info.Lang {
	case wl.Por:
		return "pt"
	case wl.Spa:
		return "es"
	default:
		return "en"
	}
}
