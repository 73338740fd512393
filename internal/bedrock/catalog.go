package bedrock

import "strings"

// ModelSummary is one entry of the foundation-model catalog listing.
type ModelSummary struct {
	ModelID        string   `json:"modelId"`
	ModelName      string   `json:"modelName"`
	ProviderName   string   `json:"providerName"`
	InferenceTypes []string `json:"inferenceTypesSupported"`
}

const inferenceTypeOnDemand = "ON_DEMAND"

var familyKeywords = []string{"claude", "llama", "mistral", "titan"}

// Model families that require inference profiles instead of on-demand
// invocation. Matched as case-insensitive substrings of the model id.
var deniedModelPrefixes = []string{
	"anthropic.claude-sonnet-4",
	"anthropic.claude-opus-4",
}

// IsChatModel reports whether a catalog entry is selectable for the
// conversation demos: it belongs to a supported family, is not behind an
// inference profile, and supports on-demand invocation. An empty
// inference-type list is treated as unconstrained and kept.
func IsChatModel(m ModelSummary) bool {
	id := strings.ToLower(m.ModelID)

	keyword := false
	for _, k := range familyKeywords {
		if strings.Contains(id, k) {
			keyword = true
			break
		}
	}
	if !keyword {
		return false
	}

	for _, denied := range deniedModelPrefixes {
		if strings.Contains(id, denied) {
			return false
		}
	}

	if len(m.InferenceTypes) == 0 {
		return true
	}
	for _, t := range m.InferenceTypes {
		if t == inferenceTypeOnDemand {
			return true
		}
	}
	return false
}

// FilterChatModels keeps the selectable chat models in catalog order.
// Numbering (1..N) is a presentation concern and is stable only for a
// single listing call.
func FilterChatModels(models []ModelSummary) []ModelSummary {
	out := make([]ModelSummary, 0, len(models))
	for _, m := range models {
		if IsChatModel(m) {
			out = append(out, m)
		}
	}
	return out
}
