package bedrock

import (
	"encoding/json"
	"fmt"
)

const anthropicVersion = "bedrock-2023-05-31"

// Sampling carries the generation parameters shared by every family.
// Zero values fall back to the demo defaults (1000 tokens, 0.7, 0.9),
// which means greedy sampling (temperature 0) cannot be requested
// through this type; none of the demo flows need it.
type Sampling struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

func (s Sampling) withDefaults() Sampling {
	if s.MaxTokens <= 0 {
		s.MaxTokens = 1000
	}
	if s.Temperature <= 0 {
		s.Temperature = 0.7
	}
	if s.TopP <= 0 {
		s.TopP = 0.9
	}
	return s
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeV3Payload struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
}

type claudeLegacyPayload struct {
	Prompt            string  `json:"prompt"`
	MaxTokensToSample int     `json:"max_tokens_to_sample"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
}

type titanGenerationConfig struct {
	MaxTokenCount int     `json:"maxTokenCount"`
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"topP"`
}

type titanPayload struct {
	InputText            string                `json:"inputText"`
	TextGenerationConfig titanGenerationConfig `json:"textGenerationConfig"`
}

type llamaPayload struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type mistralPayload struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// BuildRequest produces the provider-specific invocation body for a
// model id. Exactly one family shape is produced per request; unknown
// families yield ErrUnsupportedModel.
func BuildRequest(modelID, userText string, p Sampling) (json.RawMessage, error) {
	p = p.withDefaults()

	var body any
	switch ClassifyModel(modelID) {
	case FamilyClaudeV3:
		body = claudeV3Payload{
			AnthropicVersion: anthropicVersion,
			MaxTokens:        p.MaxTokens,
			Messages: []claudeMessage{
				{Role: "user", Content: userText},
			},
			Temperature: p.Temperature,
			TopP:        p.TopP,
		}
	case FamilyClaudeLegacy:
		body = claudeLegacyPayload{
			Prompt:            "\n\nHuman: " + userText + "\n\nAssistant:",
			MaxTokensToSample: p.MaxTokens,
			Temperature:       p.Temperature,
			TopP:              p.TopP,
		}
	case FamilyTitan:
		body = titanPayload{
			InputText: userText,
			TextGenerationConfig: titanGenerationConfig{
				MaxTokenCount: p.MaxTokens,
				Temperature:   p.Temperature,
				TopP:          p.TopP,
			},
		}
	case FamilyLlama:
		body = llamaPayload{
			Prompt:      fmt.Sprintf("<s>[INST] %s [/INST]", userText),
			MaxGenLen:   p.MaxTokens,
			Temperature: p.Temperature,
			TopP:        p.TopP,
		}
	case FamilyMistral:
		body = mistralPayload{
			Prompt:      fmt.Sprintf("<s>[INST] %s [/INST]", userText),
			MaxTokens:   p.MaxTokens,
			Temperature: p.Temperature,
			TopP:        p.TopP,
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, modelID)
	}

	return json.Marshal(body)
}
