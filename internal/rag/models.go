package rag

import (
	"errors"

	"bedrockrag/internal/store"
)

// ErrGenerationFailed reports that the underlying inference call errored.
// Single attempt, no retry.
var ErrGenerationFailed = errors.New("text generation failed")

// Answer is the service result. Retrieved carries the documents used for
// context so callers can display them; it is empty on the no-context
// path.
type Answer struct {
	Text      string           `json:"answer"`
	Retrieved []store.Document `json:"retrieved,omitempty"`
	QueryLang string           `json:"queryLang,omitempty"`
}
