package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedrockrag/internal/bedrock"
)

func TestTitanEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/model/amazon.titan-embed-text-v1/invoke", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "some text", body["inputText"])

		_, _ = w.Write([]byte(`{"embedding":[0.25,-0.5,1.0]}`))
	}))
	defer srv.Close()

	client := bedrock.NewClient(bedrock.ClientConfig{RuntimeURL: srv.URL})
	p := NewTitan(client, "amazon.titan-embed-text-v1")

	vec, err := p.Embed(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, -0.5, 1.0}, vec)
	assert.Equal(t, "bedrock:amazon.titan-embed-text-v1", p.ModelID())
}

func TestTitanEmbed_EmptyText(t *testing.T) {
	client := bedrock.NewClient(bedrock.ClientConfig{RuntimeURL: "http://unused"})
	p := NewTitan(client, "amazon.titan-embed-text-v1")

	_, err := p.Embed(context.Background(), "   ")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestTitanEmbed_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := bedrock.NewClient(bedrock.ClientConfig{RuntimeURL: srv.URL})
	p := NewTitan(client, "amazon.titan-embed-text-v1")

	_, err := p.Embed(context.Background(), "some text")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTitanEmbed_MissingEmbedding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := bedrock.NewClient(bedrock.ClientConfig{RuntimeURL: srv.URL})
	p := NewTitan(client, "amazon.titan-embed-text-v1")

	_, err := p.Embed(context.Background(), "some text")
	assert.ErrorIs(t, err, ErrUnavailable)
}
