package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"bedrockrag/internal/embeddings"
)

// PgStore keeps the session collection in Postgres with pgvector doing
// the nearest-neighbor ordering. The collection is recreated on startup,
// so nothing outlives the session.
type PgStore struct {
	db       *pgxpool.Pool
	provider embeddings.Provider
}

func NewPgStore(ctx context.Context, db *pgxpool.Pool, provider embeddings.Provider) (*PgStore, error) {
	if _, err := db.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return nil, fmt.Errorf("enable pgvector: %w", err)
	}
	if _, err := db.Exec(ctx, `DROP TABLE IF EXISTS session_document`); err != nil {
		return nil, fmt.Errorf("reset session collection: %w", err)
	}
	_, err := db.Exec(ctx, `
		CREATE TABLE session_document (
			seq       bigserial PRIMARY KEY,
			doc_id    text NOT NULL,
			content   text NOT NULL,
			embedding vector NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create session collection: %w", err)
	}

	return &PgStore{db: db, provider: provider}, nil
}

func (s *PgStore) AddDocuments(ctx context.Context, texts []string) error {
	vecs := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, err := s.provider.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("embed document: %w", err)
		}
		vecs = append(vecs, vec)
	}

	// Single transaction keeps the batch all-or-nothing and the doc_N
	// sequence gapless.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM session_document`).Scan(&count); err != nil {
		return fmt.Errorf("count documents: %w", err)
	}

	for i, text := range texts {
		_, err := tx.Exec(ctx, `
			INSERT INTO session_document (doc_id, content, embedding)
			VALUES ($1, $2, $3)
		`,
			fmt.Sprintf("doc_%d", count+i),
			text,
			pgvector.NewVector(vecs[i]),
		)
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Query ranks by cosine distance, pgvector's <=> operator.
func (s *PgStore) Query(ctx context.Context, text string, topK int) ([]Document, error) {
	if topK <= 0 {
		topK = 5
	}

	qvec, err := s.provider.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT doc_id, content
		FROM session_document
		ORDER BY embedding <=> $1
		LIMIT $2
	`, pgvector.NewVector(qvec), topK)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Text); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *PgStore) ListAll(ctx context.Context) ([]Document, error) {
	rows, err := s.db.Query(ctx, `
		SELECT doc_id, content
		FROM session_document
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Text); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

var _ Store = (*PgStore)(nil)
