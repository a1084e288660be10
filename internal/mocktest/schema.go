package mocktest

import "github.com/careercompass/compass/internal/llm"

// QuestionSetSchema defines the JSON schema for mock test generation.
var QuestionSetSchema = &llm.Schema{
	Name:        "mock-test",
	Description: "A multiple-choice mock test for one interview preparation topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly four answer options",
						},
						"answerIndex": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is correct (1-2 sentences)",
						},
					},
					"required":             []any{"prompt", "options", "answerIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
