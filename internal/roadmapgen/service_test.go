package roadmapgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

func validRoadmapJSON() json.RawMessage {
	return json.RawMessage(`{
		"roadmap": [
			{
				"id": "fund-internet",
				"title": "How the Internet Works",
				"description": "HTTP, DNS, and the request lifecycle.",
				"category": "fundamentals",
				"difficulty": "easy",
				"completed": false,
				"position": {"x": 100, "y": 0}
			},
			{
				"id": "dsa-arrays",
				"title": "Arrays & Strings",
				"description": "Core array manipulation patterns.",
				"category": "dsa",
				"difficulty": "medium",
				"completed": false,
				"position": {"x": 100, "y": 150},
				"prerequisites": ["fund-internet"]
			}
		]
	}`)
}

func validEditJSON() json.RawMessage {
	return json.RawMessage(`{
		"roadmap": [
			{
				"id": "fund-internet",
				"title": "How the Internet Works",
				"description": "HTTP, DNS, and the request lifecycle.",
				"category": "fundamentals",
				"difficulty": "easy",
				"completed": false,
				"position": {"x": 100, "y": 0}
			}
		],
		"explanation": "Removed the arrays topic"
	}`)
}

func TestGenerate_ParsesValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validRoadmapJSON()},
	)
	svc := NewService(mock, DefaultConfig())

	payload, err := svc.Generate(context.Background(), GenerateInput{
		Profile: userstate.Profile{Name: "Asha", Role: "Backend Engineer"},
		Skills:  userstate.Skills{DSA: 30, Projects: 40, Fundamentals: 50, SoftSkills: 60},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(payload.Topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(payload.Topics))
	}
	if payload.Topics[1].Prerequisites[0] != "fund-internet" {
		t.Errorf("prerequisites not preserved: %+v", payload.Topics[1])
	}
}

func TestGenerate_PromptCarriesProfileAndSkills(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validRoadmapJSON()},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{
		Profile: userstate.Profile{Role: "SDE Intern"},
		Skills:  userstate.Skills{DSA: 25},
		Goal:    "crack product company interviews",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != RoadmapSchema {
		t.Error("generate request missing roadmap schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"SDE Intern", "DSA: 25", "crack product company interviews"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_RejectsDanglingPrerequisite(t *testing.T) {
	bad := json.RawMessage(`{
		"roadmap": [
			{
				"id": "dsa-arrays",
				"title": "Arrays",
				"description": "Arrays.",
				"category": "dsa",
				"difficulty": "easy",
				"completed": false,
				"position": {"x": 0, "y": 0},
				"prerequisites": ["ghost-topic"]
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), GenerateInput{})
	var dangling *roadmap.ErrDanglingPrerequisite
	if !errors.As(err, &dangling) {
		t.Fatalf("expected ErrDanglingPrerequisite, got: %v", err)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestEdit_RequiresExplanation(t *testing.T) {
	noExplanation := json.RawMessage(`{
		"roadmap": [
			{
				"id": "dsa-arrays",
				"title": "Arrays",
				"description": "Arrays.",
				"category": "dsa",
				"difficulty": "easy",
				"completed": false,
				"position": {"x": 0, "y": 0}
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: noExplanation})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Edit(context.Background(), EditInput{Instruction: "remove everything else"})
	var missing *roadmap.ErrMissingExplanation
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingExplanation, got: %v", err)
	}
}

func TestEdit_ReturnsExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validEditJSON()})
	svc := NewService(mock, DefaultConfig())

	current := []roadmap.Topic{
		{ID: "fund-internet", Title: "How the Internet Works", Category: roadmap.CategoryFundamentals, Difficulty: roadmap.DifficultyEasy},
		{ID: "dsa-arrays", Title: "Arrays", Category: roadmap.CategoryDSA, Difficulty: roadmap.DifficultyMedium, Prerequisites: []string{"fund-internet"}},
	}

	payload, err := svc.Edit(context.Background(), EditInput{
		Current:     current,
		Instruction: "remove the arrays topic",
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if payload.Explanation != "Removed the arrays topic" {
		t.Errorf("explanation = %q", payload.Explanation)
	}
	if len(payload.Topics) != 1 {
		t.Errorf("topics = %d, want 1", len(payload.Topics))
	}

	// The prompt must carry the current roadmap and the instruction.
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "dsa-arrays") || !strings.Contains(msg, "remove the arrays topic") {
		t.Error("edit prompt missing current roadmap or instruction")
	}
	if mock.Calls[0].Schema != EditSchema {
		t.Error("edit request missing edit schema")
	}
}
