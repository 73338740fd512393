package bedrock

import "strings"

// ModelFamily identifies the provider-specific request/response schema a
// model expects.
type ModelFamily int

const (
	FamilyUnsupported ModelFamily = iota
	FamilyClaudeV3
	FamilyClaudeLegacy
	FamilyTitan
	FamilyLlama
	FamilyMistral
)

func (f ModelFamily) String() string {
	switch f {
	case FamilyClaudeV3:
		return "claude-v3"
	case FamilyClaudeLegacy:
		return "claude-legacy"
	case FamilyTitan:
		return "titan"
	case FamilyLlama:
		return "llama"
	case FamilyMistral:
		return "mistral"
	default:
		return "unsupported"
	}
}

// ClassifyModel maps a model id to its family. Matching is a
// case-insensitive substring check in fixed precedence: claude-3 before
// the generic claude match, so the two claude families are mutually
// exclusive.
func ClassifyModel(modelID string) ModelFamily {
	id := strings.ToLower(modelID)

	switch {
	case strings.Contains(id, "claude") && strings.Contains(id, "claude-3"):
		return FamilyClaudeV3
	case strings.Contains(id, "claude"):
		return FamilyClaudeLegacy
	case strings.Contains(id, "titan"):
		return FamilyTitan
	case strings.Contains(id, "llama"):
		return FamilyLlama
	case strings.Contains(id, "mistral"):
		return FamilyMistral
	default:
		return FamilyUnsupported
	}
}
