package store

import "context"

// Document is one stored text with its session-scoped id. Ids are
// assigned sequentially at insertion time (doc_0, doc_1, …) and never
// reused within a process lifetime.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Store is a minimal document collection with similarity search. Add and
// Query are serialized against each other; batches insert all-or-nothing,
// so a failed embedding call leaves the contents and the id sequence
// untouched.
type Store interface {
	AddDocuments(ctx context.Context, texts []string) error
	Query(ctx context.Context, text string, topK int) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
}
