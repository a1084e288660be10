// Package roadmapgen generates and edits roadmaps through an LLM
// provider. Provider output passes schema validation inside the llm
// package, then the stricter domain validation in the roadmap package
// (field checks, prerequisite graph integrity). Both gates must pass
// before anything reaches user state.
package roadmapgen

import (
	"context"
	"fmt"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/roadmap"
)

// Service generates and edits roadmaps.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a roadmap generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a fresh roadmap for the given profile. The result
// is fully validated; a non-nil error means nothing usable came back.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*roadmap.Payload, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateUserMessage(input)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	payload, err := roadmap.ParsePayload(resp.Content, roadmap.ParseOptions{})
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	if len(payload.Topics) > MaxTopics {
		payload.Topics = payload.Topics[:MaxTopics]
		// Truncation can orphan prerequisites; re-check.
		if err := roadmap.Validate(payload.Topics); err != nil {
			return nil, fmt.Errorf("roadmap generation: %w", err)
		}
	}

	return payload, nil
}

// Edit applies a conversational instruction to an existing roadmap.
// The returned payload always carries an explanation.
func (s *Service) Edit(ctx context.Context, input EditInput) (*roadmap.Payload, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-edit")

	userMsg, err := buildEditUserMessage(input)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System: editSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EditSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap edit: %w", err)
	}

	payload, err := roadmap.ParsePayload(resp.Content, roadmap.ParseOptions{RequireExplanation: true})
	if err != nil {
		return nil, fmt.Errorf("roadmap edit: %w", err)
	}

	return payload, nil
}
