package embeddings

import (
	"context"
	"fmt"

	"bedrockrag/internal/llm"
)

type geminiProvider struct {
	client *llm.GeminiClient
}

// NewGemini wraps the Gemini client as an embeddings provider.
func NewGemini(ctx context.Context) (Provider, error) {
	c, err := llm.NewGeminiClient(ctx)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Wrap adapts an already constructed Gemini client.
func Wrap(c *llm.GeminiClient) Provider {
	return &geminiProvider{client: c}
}

func (p *geminiProvider) ModelID() string {
	return p.client.ModelID()
}

func (p *geminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := p.client.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return vec, nil
}
