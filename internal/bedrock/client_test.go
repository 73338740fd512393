package bedrock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeModel_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"content":[{"text":"hello"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL, APIKey: "test-key"})

	body, err := BuildRequest("anthropic.claude-3-haiku-20240307-v1:0", "hi", Sampling{})
	require.NoError(t, err)

	raw, err := c.InvokeModel(context.Background(), "anthropic.claude-3-haiku-20240307-v1:0", body)
	require.NoError(t, err)

	assert.Equal(t, "/model/anthropic.claude-3-haiku-20240307-v1:0/invoke", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "bedrock-2023-05-31", gotBody["anthropic_version"])
	assert.JSONEq(t, `{"content":[{"text":"hello"}]}`, string(raw))
}

func TestInvokeModel_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Amzn-Errortype", "ValidationException:http://internal")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"model requires an inference profile"}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})

	_, err := c.InvokeModel(context.Background(), "anthropic.claude-v2", json.RawMessage(`{}`))
	require.Error(t, err)

	var ie *InvokeError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, KindValidation, ie.Kind)
	assert.Equal(t, "anthropic.claude-v2", ie.ModelID)
	assert.Contains(t, ie.Message, "inference profile")
	assert.NotEmpty(t, ie.Hint())
}

func TestInvokeModel_AccessDeniedFromBodyType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"__type":"AccessDeniedException","message":"no entitlement"}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})

	_, err := c.InvokeModel(context.Background(), "amazon.titan-text-express-v1", json.RawMessage(`{}`))

	var ie *InvokeError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, KindAccessDenied, ie.Kind)
	assert.Contains(t, ie.Hint(), "access")
}

func TestInvokeModel_OtherError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})

	_, err := c.InvokeModel(context.Background(), "amazon.titan-text-express-v1", json.RawMessage(`{}`))

	var ie *InvokeError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, KindOther, ie.Kind)
	assert.Empty(t, ie.Hint())
}

func TestInvokeModel_TransportFailure(t *testing.T) {
	c := NewClient(ClientConfig{RuntimeURL: "http://127.0.0.1:1"})

	_, err := c.InvokeModel(context.Background(), "anthropic.claude-v2", json.RawMessage(`{}`))

	var ie *InvokeError
	require.ErrorAs(t, err, &ie, "transport failures must be normalized, not raw")
	assert.Equal(t, KindOther, ie.Kind)
}

func TestInvokeModel_TruncatedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Claim a longer body than gets written so the client's read
		// fails mid-stream.
		w.Header().Set("Content-Length", "1000")
		_, _ = w.Write([]byte(`{"content":`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})

	_, err := c.InvokeModel(context.Background(), "anthropic.claude-v2", json.RawMessage(`{}`))

	var ie *InvokeError
	require.ErrorAs(t, err, &ie, "body read failures must be normalized, not raw")
	assert.Equal(t, KindOther, ie.Kind)
	assert.Contains(t, ie.Message, "read response")
}

func TestListChatModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foundation-models", r.URL.Path)
		_, _ = w.Write([]byte(`{"modelSummaries":[
			{"modelId":"anthropic.claude-3-haiku-20240307-v1:0","modelName":"Claude 3 Haiku","providerName":"Anthropic","inferenceTypesSupported":["ON_DEMAND"]},
			{"modelId":"anthropic.claude-opus-4","modelName":"Claude Opus 4","providerName":"Anthropic","inferenceTypesSupported":[]},
			{"modelId":"stability.stable-diffusion-xl-v1","modelName":"SDXL","providerName":"Stability AI","inferenceTypesSupported":["ON_DEMAND"]}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{ControlURL: srv.URL})

	models, err := c.ListChatModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", models[0].ModelID)
	assert.Equal(t, "Claude 3 Haiku", models[0].ModelName)
}

func TestListChatModels_CatalogUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{ControlURL: srv.URL})

	models, err := c.ListChatModels(context.Background())
	assert.Empty(t, models)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestListFoundationModels_TruncatedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		_, _ = w.Write([]byte(`{"modelSummaries":[`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{ControlURL: srv.URL})

	_, err := c.ListFoundationModels(context.Background())
	require.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "read catalog response")
}

func TestChat_ComposesAdapters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "Hello", body["inputText"])
		_, _ = w.Write([]byte(`{"results":[{"outputText":"Hi there"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})

	got, err := c.Chat(context.Background(), "amazon.titan-text-express-v1", "Hello", Sampling{})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", got)
}

func TestChat_UnsupportedModelNeverHitsTheWire(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})

	_, err := c.Chat(context.Background(), "ai21.j2-ultra-v1", "hi", Sampling{})
	assert.ErrorIs(t, err, ErrUnsupportedModel)
	assert.False(t, called)
}

// The RAG generator invokes its fixed model with the 500-token cap.
func TestGenerator_FixedModelAndCap(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"content":[{"text":"generated"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{RuntimeURL: srv.URL})
	g := NewGenerator(c, "anthropic.claude-3-haiku-20240307-v1:0", Sampling{MaxTokens: 500})

	got, err := g.Generate(context.Background(), "some prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated", got)
	assert.Equal(t, "/model/anthropic.claude-3-haiku-20240307-v1:0/invoke", gotPath)
	assert.Equal(t, float64(500), gotBody["max_tokens"])
}
