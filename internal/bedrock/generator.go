package bedrock

import "context"

// Generator binds the client to a fixed generation model, exposing the
// one-prompt-in, one-text-out contract the RAG service consumes.
type Generator struct {
	client  *Client
	modelID string
	params  Sampling
}

func NewGenerator(client *Client, modelID string, params Sampling) *Generator {
	return &Generator{client: client, modelID: modelID, params: params}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.client.Chat(ctx, g.modelID, prompt, g.params)
}
