package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"bedrockrag/internal/bedrock"
	"bedrockrag/internal/config"
	"bedrockrag/internal/db"
	"bedrockrag/internal/embeddings"
	"bedrockrag/internal/llm"
	"bedrockrag/internal/rag"
	"bedrockrag/internal/store"
	"bedrockrag/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "bedrockrag",
	Short:        "Interactive chat and RAG demos for Amazon Bedrock",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `bedrockrag talks to hosted foundation models through the Bedrock
runtime API and drives a minimal retrieval-augmented-generation workflow
over a session-scoped vector store.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient wires only the Bedrock client, for commands that never touch
// the store or the embedding backend.
func newClient() (*bedrock.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return bedrock.NewClient(bedrock.ClientConfig{
		RuntimeURL: cfg.Bedrock.RuntimeURL(),
		ControlURL: cfg.Bedrock.ControlURL(),
		APIKey:     cfg.Bedrock.APIKey,
	}), nil
}

// app holds the long-lived handles every command wires up: config, the
// Bedrock client, the vector store and the RAG service. Nothing here is
// ambient global state; handles are constructed once and passed along.
type app struct {
	cfg     *config.Config
	client  *bedrock.Client
	service *rag.Service

	pool *pgxpool.Pool
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := bedrock.NewClient(bedrock.ClientConfig{
		RuntimeURL: cfg.Bedrock.RuntimeURL(),
		ControlURL: cfg.Bedrock.ControlURL(),
		APIKey:     cfg.Bedrock.APIKey,
	})

	a := &app{cfg: cfg, client: client}

	provider, generator, err := a.backends(ctx)
	if err != nil {
		return nil, err
	}

	st, err := a.newStore(ctx, provider)
	if err != nil {
		return nil, err
	}

	a.service = rag.NewService(st, generator)
	return a, nil
}

// backends picks the embedding provider and generator pair. The gemini
// provider serves both roles with one client, the way the default pairs
// Titan embeddings with a Claude generator.
func (a *app) backends(ctx context.Context) (embeddings.Provider, rag.Generator, error) {
	if a.cfg.Bedrock.EmbeddingsProvider == "gemini" {
		gemini, err := llm.NewGeminiClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		return embeddings.Wrap(gemini), gemini, nil
	}

	provider, err := embeddings.NewFromConfig(ctx, a.cfg.Bedrock, a.client)
	if err != nil {
		return nil, nil, err
	}
	generator := bedrock.NewGenerator(a.client, a.cfg.Bedrock.GenerationModel, bedrock.Sampling{
		MaxTokens: 500,
	})
	return provider, generator, nil
}

func (a *app) newStore(ctx context.Context, provider embeddings.Provider) (store.Store, error) {
	switch a.cfg.Store.Backend {
	case "pgvector":
		pool, err := db.NewPool(ctx, a.cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		return store.NewPgStore(ctx, pool, provider)
	case "memory", "":
		return store.NewMemoryStore(provider), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", a.cfg.Store.Backend)
	}
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	logger.Sync()
}
