package roadmap

import (
	"errors"
	"strings"
	"testing"
)

const validPayload = `{
	"roadmap": [
		{"id": "arrays", "title": "Arrays", "description": "Basics", "completed": false,
		 "position": {"x": 50, "y": 10}, "category": "dsa", "difficulty": "easy"},
		{"id": "trees", "title": "Trees", "description": "BSTs", "completed": false,
		 "position": {"x": 50, "y": 25}, "prerequisites": ["arrays"], "category": "dsa", "difficulty": "medium"}
	]
}`

func TestParsePayload_Valid(t *testing.T) {
	p, err := ParsePayload([]byte(validPayload), ParseOptions{})
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if len(p.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(p.Topics))
	}
	if p.Topics[1].Prerequisites[0] != "arrays" {
		t.Errorf("prerequisites not carried through: %v", p.Topics[1].Prerequisites)
	}
	if p.Topics[0].Position.Y != 10 {
		t.Errorf("position not parsed: %+v", p.Topics[0].Position)
	}
}

func TestParsePayload_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"
	if _, err := ParsePayload([]byte(fenced), ParseOptions{}); err != nil {
		t.Fatalf("fenced payload rejected: %v", err)
	}
}

func TestParsePayload_MalformedJSON(t *testing.T) {
	var malformed *ErrMalformedJSON
	_, err := ParsePayload([]byte("not json at all"), ParseOptions{})
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestParsePayload_SchemaViolationNamesField(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"missing roadmap key", `{"topics": []}`, "roadmap"},
		{"roadmap not array", `{"roadmap": {"id": "x"}}`, "roadmap"},
		{"empty id", `{"roadmap": [{"id": "", "title": "t", "description": "d", "completed": false, "position": {"x": 1, "y": 2}}]}`, "roadmap[0].id"},
		{"bad completed", `{"roadmap": [{"id": "a", "title": "t", "description": "d", "completed": "yes", "position": {"x": 1, "y": 2}}]}`, "roadmap[0].completed"},
		{"missing position", `{"roadmap": [{"id": "a", "title": "t", "description": "d", "completed": false}]}`, "roadmap[0].position"},
		{"non-numeric position", `{"roadmap": [{"id": "a", "title": "t", "description": "d", "completed": false, "position": {"x": "left", "y": 2}}]}`, "roadmap[0].position"},
		{"second element bad", `{"roadmap": [
			{"id": "a", "title": "t", "description": "d", "completed": false, "position": {"x": 1, "y": 2}},
			{"id": "b", "title": 7, "description": "d", "completed": false, "position": {"x": 1, "y": 2}}
		]}`, "roadmap[1].title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tc.payload), ParseOptions{})
			var sv *ErrSchemaViolation
			if !errors.As(err, &sv) {
				t.Fatalf("expected ErrSchemaViolation, got %v", err)
			}
			if sv.Field != tc.field {
				t.Errorf("field = %q, want %q", sv.Field, tc.field)
			}
		})
	}
}

func TestParsePayload_RequireExplanation(t *testing.T) {
	_, err := ParsePayload([]byte(validPayload), ParseOptions{RequireExplanation: true})
	var missing *ErrMissingExplanation
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingExplanation, got %v", err)
	}

	withExp := strings.TrimSuffix(strings.TrimSpace(validPayload), "}") + `, "explanation": "removed basics"}`
	p, err := ParsePayload([]byte(withExp), ParseOptions{RequireExplanation: true})
	if err != nil {
		t.Fatalf("payload with explanation rejected: %v", err)
	}
	if p.Explanation != "removed basics" {
		t.Errorf("explanation = %q", p.Explanation)
	}
}

func TestParsePayload_RunsGraphValidation(t *testing.T) {
	dangling := `{"roadmap": [
		{"id": "a", "title": "t", "description": "d", "completed": false,
		 "position": {"x": 1, "y": 2}, "prerequisites": ["missing"]}
	]}`
	_, err := ParsePayload([]byte(dangling), ParseOptions{})
	var dp *ErrDanglingPrerequisite
	if !errors.As(err, &dp) {
		t.Fatalf("expected ErrDanglingPrerequisite, got %v", err)
	}
}

func TestParsePayload_DefaultsCategoryAndDifficulty(t *testing.T) {
	payload := `{"roadmap": [
		{"id": "a", "title": "t", "description": "d", "completed": false, "position": {"x": 1, "y": 2}}
	]}`
	p, err := ParsePayload([]byte(payload), ParseOptions{})
	if err != nil {
		t.Fatalf("payload rejected: %v", err)
	}
	if p.Topics[0].Category != CategoryFundamentals {
		t.Errorf("category default = %q", p.Topics[0].Category)
	}
	if p.Topics[0].Difficulty != DifficultyMedium {
		t.Errorf("difficulty default = %q", p.Topics[0].Difficulty)
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := StripCodeFences(tc.in); got != tc.want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
