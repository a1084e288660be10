package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var topicSchema = &Schema{
	Name:        "test-topic",
	Description: "A roadmap topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":         map[string]any{"type": "string"},
			"title":      map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"id", "title"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"id":"arrays","title":"Arrays & Strings","difficulty":"easy"}`, false},
		{"optional field omitted", `{"id":"graphs","title":"Graphs"}`, false},
		{"required field missing", `{"id":"graphs"}`, true},
		{"wrong type", `{"id":42,"title":"Arrays"}`, true},
		{"enum value out of range", `{"id":"trees","title":"Trees","difficulty":"brutal"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(topicSchema, json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPassesAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseNestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
					},
					"required": []any{"id"},
				},
				"prerequisites": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"topic", "prerequisites"},
		},
	}

	valid := json.RawMessage(`{"topic":{"id":"dp"},"prerequisites":["recursion","arrays"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"topic":{"id":"dp"},"prerequisites":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
