package bedrock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_ClaudeV3(t *testing.T) {
	got, err := ExtractText("anthropic.claude-3-haiku-20240307-v1:0",
		[]byte(`{"content":[{"text":"first"},{"text":"second"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestExtractText_ClaudeV3_NoContent(t *testing.T) {
	_, err := ExtractText("anthropic.claude-3-haiku-20240307-v1:0", []byte(`{"content":[]}`))
	assert.Error(t, err)
}

func TestExtractText_ClaudeLegacy(t *testing.T) {
	got, err := ExtractText("anthropic.claude-v2", []byte(`{"completion":" answer"}`))
	require.NoError(t, err)
	assert.Equal(t, " answer", got)
}

func TestExtractText_ClaudeLegacy_MissingCompletion(t *testing.T) {
	got, err := ExtractText("anthropic.claude-v2", []byte(`{"stop_reason":"max_tokens"}`))
	require.NoError(t, err)
	assert.Equal(t, "No response", got)
}

func TestExtractText_Titan(t *testing.T) {
	got, err := ExtractText("amazon.titan-text-express-v1",
		[]byte(`{"results":[{"outputText":"titan answer"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "titan answer", got)
}

func TestExtractText_Titan_NoResults(t *testing.T) {
	_, err := ExtractText("amazon.titan-text-express-v1", []byte(`{"results":[]}`))
	assert.Error(t, err)
}

func TestExtractText_Llama(t *testing.T) {
	got, err := ExtractText("meta.llama3-8b-instruct-v1:0", []byte(`{"generation":"llama answer"}`))
	require.NoError(t, err)
	assert.Equal(t, "llama answer", got)

	got, err = ExtractText("meta.llama3-8b-instruct-v1:0", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "No response", got)
}

func TestExtractText_Mistral(t *testing.T) {
	got, err := ExtractText("mistral.mistral-7b-instruct-v0:2",
		[]byte(`{"outputs":[{"text":"mistral answer"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "mistral answer", got)
}

func TestExtractText_Mistral_Fallbacks(t *testing.T) {
	got, err := ExtractText("mistral.mistral-7b-instruct-v0:2", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "No response", got)

	got, err = ExtractText("mistral.mistral-7b-instruct-v0:2", []byte(`{"outputs":[{}]}`))
	require.NoError(t, err)
	assert.Equal(t, "No response", got)
}

// An unmatched family falls back to the raw payload stringified; it is a
// last-resort display value, not an error.
func TestExtractText_UnsupportedFamilyStringifies(t *testing.T) {
	raw := `{"whatever":"shape"}`
	got, err := ExtractText("ai21.j2-ultra-v1", []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestExtractText_InvalidJSON(t *testing.T) {
	_, err := ExtractText("anthropic.claude-3-haiku-20240307-v1:0", []byte(`not json`))
	assert.Error(t, err)
}
