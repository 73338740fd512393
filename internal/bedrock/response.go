package bedrock

import (
	"encoding/json"
	"fmt"
)

const noResponse = "No response"

// ExtractText pulls the generated text out of a raw invocation response,
// using the same family dispatch as BuildRequest. For an unsupported
// family the raw payload is returned stringified rather than rejected,
// preserving partial usefulness.
func ExtractText(modelID string, raw []byte) (string, error) {
	switch ClassifyModel(modelID) {
	case FamilyClaudeV3:
		var body struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", fmt.Errorf("parse claude response: %w", err)
		}
		if len(body.Content) == 0 {
			return "", fmt.Errorf("claude response has no content blocks")
		}
		return body.Content[0].Text, nil

	case FamilyClaudeLegacy:
		var body struct {
			Completion *string `json:"completion"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", fmt.Errorf("parse claude response: %w", err)
		}
		if body.Completion == nil {
			return noResponse, nil
		}
		return *body.Completion, nil

	case FamilyTitan:
		var body struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", fmt.Errorf("parse titan response: %w", err)
		}
		if len(body.Results) == 0 {
			return "", fmt.Errorf("titan response has no results")
		}
		return body.Results[0].OutputText, nil

	case FamilyLlama:
		var body struct {
			Generation *string `json:"generation"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", fmt.Errorf("parse llama response: %w", err)
		}
		if body.Generation == nil {
			return noResponse, nil
		}
		return *body.Generation, nil

	case FamilyMistral:
		var body struct {
			Outputs []struct {
				Text *string `json:"text"`
			} `json:"outputs"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", fmt.Errorf("parse mistral response: %w", err)
		}
		if len(body.Outputs) == 0 || body.Outputs[0].Text == nil {
			return noResponse, nil
		}
		return *body.Outputs[0].Text, nil

	default:
		return string(raw), nil
	}
}
