package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Bedrock.Region)
	assert.Equal(t, "amazon.titan-embed-text-v1", cfg.Bedrock.EmbeddingModel)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", cfg.Bedrock.GenerationModel)
	assert.Equal(t, "titan", cfg.Bedrock.EmbeddingsProvider)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestBedrockConfig_EndpointDerivation(t *testing.T) {
	cfg := BedrockConfig{Region: "eu-west-1"}
	assert.Equal(t, "https://bedrock-runtime.eu-west-1.amazonaws.com", cfg.RuntimeURL())
	assert.Equal(t, "https://bedrock.eu-west-1.amazonaws.com", cfg.ControlURL())
}

func TestBedrockConfig_EndpointOverride(t *testing.T) {
	cfg := BedrockConfig{
		Region:          "us-east-1",
		RuntimeEndpoint: "http://localhost:9000",
		ControlEndpoint: "http://localhost:9001",
	}
	assert.Equal(t, "http://localhost:9000", cfg.RuntimeURL())
	assert.Equal(t, "http://localhost:9001", cfg.ControlURL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "pgvector")
	t.Setenv("EMBEDDINGS_PROVIDER", "gemini")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pgvector", cfg.Store.Backend)
	assert.Equal(t, "gemini", cfg.Bedrock.EmbeddingsProvider)
}
