package embeddings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bedrockrag/internal/bedrock"
)

type titanProvider struct {
	client  *bedrock.Client
	modelID string
}

// NewTitan builds a provider backed by a Bedrock embedding model, by
// default amazon.titan-embed-text-v1. The wire shape is
// {"inputText": ...} in and {"embedding": [...]} out.
func NewTitan(client *bedrock.Client, modelID string) Provider {
	return &titanProvider{client: client, modelID: modelID}
}

func (p *titanProvider) ModelID() string {
	return "bedrock:" + p.modelID
}

func (p *titanProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	body, err := json.Marshal(map[string]string{"inputText": text})
	if err != nil {
		return nil, err
	}

	raw, err := p.client.InvokeModel(ctx, p.modelID, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: cannot parse embedding response: %v", ErrUnavailable, err)
	}
	if len(parsed.Embedding) == 0 {
		return nil, fmt.Errorf("%w: response missing embedding", ErrUnavailable)
	}

	out := make([]float32, len(parsed.Embedding))
	for i, v := range parsed.Embedding {
		out[i] = float32(v)
	}
	return out, nil
}
