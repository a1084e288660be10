package roadmapgen

import "github.com/careercompass/compass/internal/llm"

// topicProperties is the per-topic schema shared by generation and edit.
var topicProperties = map[string]any{
	"id": map[string]any{
		"type":        "string",
		"description": "Stable kebab-case identifier, e.g. 'dsa-arrays'",
	},
	"title": map[string]any{
		"type":        "string",
		"description": "Short topic title",
	},
	"description": map[string]any{
		"type":        "string",
		"description": "One or two sentences on what to learn and why",
	},
	"category": map[string]any{
		"type": "string",
		"enum": []any{"dsa", "projects", "fundamentals", "softSkills"},
	},
	"difficulty": map[string]any{
		"type": "string",
		"enum": []any{"easy", "medium", "hard"},
	},
	"completed": map[string]any{
		"type": "boolean",
	},
	"position": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"type": "number"},
			"y": map[string]any{"type": "number"},
		},
		"required":             []any{"x", "y"},
		"additionalProperties": false,
	},
	"prerequisites": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "IDs of topics that must be completed first",
	},
}

var topicRequired = []any{"id", "title", "description", "category", "difficulty", "completed", "position"}

// RoadmapSchema defines the JSON schema for full roadmap generation.
var RoadmapSchema = &llm.Schema{
	Name:        "roadmap",
	Description: "A placement preparation roadmap as a prerequisite graph of topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roadmap": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"properties":           topicProperties,
					"required":             topicRequired,
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"roadmap"},
		"additionalProperties": false,
	},
}

// EditSchema defines the JSON schema for conversational roadmap edits.
// Edits return the full modified roadmap plus a short explanation of
// what changed.
var EditSchema = &llm.Schema{
	Name:        "roadmap-edit",
	Description: "A modified roadmap with a short explanation of the change",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roadmap": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"properties":           topicProperties,
					"required":             topicRequired,
					"additionalProperties": false,
				},
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "What was changed and why, under 50 characters",
			},
		},
		"required":             []any{"roadmap", "explanation"},
		"additionalProperties": false,
	},
}
