package coach

import "github.com/abhisek/prepdash/internal/llm"

// AdviceSchema defines the JSON schema for study-coach advice.
var AdviceSchema = &llm.Schema{
	Name:        "study-advice",
	Description: "Personalized study advice derived from the learner's practice statistics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence read of the learner's current state",
			},
			"focus_unit": map[string]any{
				"type":        "string",
				"description": "The single unit to prioritize next, chosen from the listed weak units",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete actions for the coming week (one sentence each)",
			},
		},
		"required":             []any{"summary", "focus_unit", "tips"},
		"additionalProperties": false,
	},
}
