package mocktest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

func questionSetJSON(count int) json.RawMessage {
	var qs []string
	for i := 0; i < count; i++ {
		qs = append(qs, fmt.Sprintf(`{
			"prompt": "Question %d?",
			"options": ["a", "b", "c", "d"],
			"answerIndex": %d,
			"explanation": "Because."
		}`, i+1, i%4))
	}
	return json.RawMessage(`{"questions": [` + strings.Join(qs, ",") + `]}`)
}

func TestGenerate_ValidSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionSetJSON(5)})
	svc := NewService(mock, DefaultConfig())

	set, err := svc.Generate(context.Background(), GenerateInput{
		Topic:      "Arrays",
		Category:   roadmap.CategoryDSA,
		SkillLevel: 40,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(set.Questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(set.Questions))
	}
	if set.Topic != "Arrays" || set.Category != roadmap.CategoryDSA {
		t.Errorf("set metadata = %q/%q", set.Topic, set.Category)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Arrays") || !strings.Contains(msg, "40/100") {
		t.Error("prompt missing topic or skill level")
	}
}

func TestGenerate_RejectsUntestableCategories(t *testing.T) {
	for _, c := range []roadmap.Category{roadmap.CategoryProjects, roadmap.CategorySoftSkills} {
		mock := llm.NewMockProvider()
		svc := NewService(mock, DefaultConfig())

		_, err := svc.Generate(context.Background(), GenerateInput{Topic: "x", Category: c})
		var invalid *userstate.ErrInvalidTestCategory
		if !errors.As(err, &invalid) {
			t.Errorf("category %s: expected ErrInvalidTestCategory, got %v", c, err)
		}
		if mock.CallCount() != 0 {
			t.Errorf("category %s: provider should not be called", c)
		}
	}
}

func TestGenerate_RejectsWrongCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionSetJSON(3)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{
		Topic:    "Arrays",
		Category: roadmap.CategoryDSA,
		Count:    5,
	})
	var invalid *ErrInvalidQuestionSet
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidQuestionSet, got: %v", err)
	}
}

func TestGenerate_RejectsOutOfRangeAnswer(t *testing.T) {
	bad := json.RawMessage(`{"questions": [{
		"prompt": "Q?",
		"options": ["a", "b", "c", "d"],
		"answerIndex": 4,
		"explanation": "e"
	}]}`)
	// Schema validation catches this first (maximum: 3); the provider
	// surfaces it as an invalid response.
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: bad, Err: errors.New("schema validation failed")},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{
		Topic: "Arrays", Category: roadmap.CategoryDSA, Count: 1,
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateSet_FieldProblems(t *testing.T) {
	good := func() QuestionSet {
		return QuestionSet{Questions: []Question{{
			Prompt:      "Q?",
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: 1,
			Explanation: "e",
		}}}
	}

	tests := []struct {
		name   string
		mutate func(*QuestionSet)
	}{
		{"empty prompt", func(s *QuestionSet) { s.Questions[0].Prompt = "" }},
		{"three options", func(s *QuestionSet) { s.Questions[0].Options = s.Questions[0].Options[:3] }},
		{"empty option", func(s *QuestionSet) { s.Questions[0].Options[2] = "" }},
		{"negative answer", func(s *QuestionSet) { s.Questions[0].AnswerIndex = -1 }},
		{"answer too large", func(s *QuestionSet) { s.Questions[0].AnswerIndex = 4 }},
		{"empty explanation", func(s *QuestionSet) { s.Questions[0].Explanation = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := good()
			tt.mutate(&set)
			if err := validateSet(set, 1); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := validateSet(good(), 1); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}
}

func TestGrade(t *testing.T) {
	set := QuestionSet{Questions: []Question{
		{AnswerIndex: 0},
		{AnswerIndex: 2},
		{AnswerIndex: 1},
	}}

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 2, 1}, 3},
		{"one wrong", []int{0, 2, 3}, 2},
		{"all wrong", []int{1, 1, 0}, 0},
		{"short answers", []int{0}, 1},
		{"extra answers ignored", []int{0, 2, 1, 3, 3}, 3},
		{"no answers", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(set, tt.answers); got != tt.want {
				t.Errorf("Grade = %d, want %d", got, tt.want)
			}
		})
	}
}
