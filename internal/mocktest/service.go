package mocktest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

// Config controls generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}

// GenerateInput describes the test to generate.
type GenerateInput struct {
	Topic      string
	Category   roadmap.Category
	Count      int // 0 means DefaultQuestionCount
	SkillLevel int // current skill in the category, for difficulty calibration
}

// Service generates mock tests through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a mock test generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a validated question set. Only dsa and fundamentals
// categories are testable.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*QuestionSet, error) {
	if input.Category != roadmap.CategoryDSA && input.Category != roadmap.CategoryFundamentals {
		return nil, &userstate.ErrInvalidTestCategory{Category: input.Category}
	}

	count := input.Count
	if count == 0 {
		count = DefaultQuestionCount
	}
	if count < 1 || count > MaxQuestionCount {
		return nil, fmt.Errorf("question count %d out of range [1, %d]", count, MaxQuestionCount)
	}

	ctx = llm.WithPurpose(ctx, "test-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateUserMessage(input, count)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("test generation: %w", err)
	}

	var out struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse test response: %w", err)
	}

	set := QuestionSet{
		Topic:     input.Topic,
		Category:  input.Category,
		Questions: out.Questions,
	}
	if err := validateSet(set, count); err != nil {
		return nil, fmt.Errorf("test generation: %w", err)
	}

	return &set, nil
}
