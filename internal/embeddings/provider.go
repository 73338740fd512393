package embeddings

import (
	"context"
	"errors"
	"fmt"

	"bedrockrag/internal/bedrock"
	"bedrockrag/internal/config"
)

// ErrUnavailable reports a failed embedding call. Store operations abort
// without partial mutation when they see it.
var ErrUnavailable = errors.New("embedding service unavailable")

// Provider embeds text into a fixed-length float vector.
//
// Implementations must be deterministic for the same input text and model.
type Provider interface {
	ModelID() string
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NewFromConfig returns the configured embeddings provider.
func NewFromConfig(ctx context.Context, cfg config.BedrockConfig, client *bedrock.Client) (Provider, error) {
	switch cfg.EmbeddingsProvider {
	case "titan", "":
		return NewTitan(client, cfg.EmbeddingModel), nil
	case "gemini":
		return NewGemini(ctx)
	default:
		return nil, fmt.Errorf("unsupported embeddings provider: %s", cfg.EmbeddingsProvider)
	}
}
