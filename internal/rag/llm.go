package rag

import "context"

// Generator produces text for a fully composed prompt. The service owns
// prompt construction; implementations only talk to their model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
