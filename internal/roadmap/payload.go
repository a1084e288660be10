package roadmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload is a validated external roadmap document, as produced by the
// AI generator or editor. Both are untrusted input: nothing reaches a
// Payload without passing the full structural and graph checks.
type Payload struct {
	Topics      []Topic
	Explanation string
}

// ParseOptions configures payload validation.
type ParseOptions struct {
	// RequireExplanation enforces the edit-response contract: a
	// non-empty explanation string must be present.
	RequireExplanation bool
}

// ParsePayload validates raw text from an external roadmap generator.
// It strips optional code-fence wrapping, JSON-parses, checks the
// structural contract field by field, and validates the resulting
// prerequisite graph. On any failure the typed error identifies the
// problem; no partially parsed result is ever returned.
func ParsePayload(raw []byte, opts ParseOptions) (*Payload, error) {
	cleaned := StripCodeFences(string(raw))

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ErrMalformedJSON{Err: err}
	}

	rawList, ok := doc["roadmap"]
	if !ok {
		return nil, &ErrSchemaViolation{Field: "roadmap", Reason: "missing"}
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(rawList, &items); err != nil {
		return nil, &ErrSchemaViolation{Field: "roadmap", Reason: "not an array of objects"}
	}

	topics := make([]Topic, 0, len(items))
	for i, item := range items {
		topic, err := parseTopic(item, i)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}

	p := &Payload{Topics: topics}

	if opts.RequireExplanation {
		rawExp, ok := doc["explanation"]
		if !ok {
			return nil, &ErrMissingExplanation{}
		}
		var exp string
		if err := json.Unmarshal(rawExp, &exp); err != nil || exp == "" {
			return nil, &ErrMissingExplanation{}
		}
		p.Explanation = exp
	}

	if err := Validate(topics); err != nil {
		return nil, err
	}
	return p, nil
}

// parseTopic checks one roadmap element against the payload contract.
// idx is used only to name the offending field on failure.
func parseTopic(item map[string]json.RawMessage, idx int) (Topic, error) {
	at := func(field string) string { return fmt.Sprintf("roadmap[%d].%s", idx, field) }

	var t Topic

	id, err := stringField(item, "id")
	if err != nil || id == "" {
		return t, &ErrSchemaViolation{Field: at("id"), Reason: "must be a non-empty string"}
	}
	t.ID = id

	if t.Title, err = stringField(item, "title"); err != nil {
		return t, &ErrSchemaViolation{Field: at("title"), Reason: "must be a string"}
	}
	if t.Description, err = stringField(item, "description"); err != nil {
		return t, &ErrSchemaViolation{Field: at("description"), Reason: "must be a string"}
	}

	rawCompleted, ok := item["completed"]
	if !ok {
		return t, &ErrSchemaViolation{Field: at("completed"), Reason: "missing"}
	}
	if err := json.Unmarshal(rawCompleted, &t.Completed); err != nil {
		return t, &ErrSchemaViolation{Field: at("completed"), Reason: "must be a boolean"}
	}

	rawPos, ok := item["position"]
	if !ok {
		return t, &ErrSchemaViolation{Field: at("position"), Reason: "missing"}
	}
	if err := json.Unmarshal(rawPos, &t.Position); err != nil {
		return t, &ErrSchemaViolation{Field: at("position"), Reason: "must be an object with numeric x and y"}
	}

	if rawPrereq, ok := item["prerequisites"]; ok {
		if err := json.Unmarshal(rawPrereq, &t.Prerequisites); err != nil {
			return t, &ErrSchemaViolation{Field: at("prerequisites"), Reason: "must be an array of topic ids"}
		}
	}

	// Category and difficulty are part of the generation prompt but
	// older generator output omits them. Absent or unrecognized values
	// fall back to conservative defaults rather than failing the
	// payload.
	if raw, ok := item["category"]; ok {
		var c Category
		if err := json.Unmarshal(raw, &c); err == nil && c.Valid() {
			t.Category = c
		}
	}
	if t.Category == "" {
		t.Category = CategoryFundamentals
	}
	if raw, ok := item["difficulty"]; ok {
		var d Difficulty
		if err := json.Unmarshal(raw, &d); err == nil && d.Valid() {
			t.Difficulty = d
		}
	}
	if t.Difficulty == "" {
		t.Difficulty = DifficultyMedium
	}

	return t, nil
}

func stringField(item map[string]json.RawMessage, key string) (string, error) {
	raw, ok := item[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// StripCodeFences removes a markdown code-fence wrapper, a common
// formatting artifact of text-generation responses.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
