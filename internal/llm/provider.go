// Package llm abstracts the external text-generation services behind a
// single Provider interface. Consumers (roadmap generation/editing,
// mock-test generation) describe what they want as a Request with a
// JSON schema; providers return schema-validated JSON. Everything that
// comes back is still treated as untrusted input by the domain
// validators — schema validation here is a first gate, not the last.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt and returns a structured response. When
	// the request carries a Schema, the provider uses its native
	// structured-output mechanism and validates the result against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation history. Roadmap and test
	// generation are single-turn, so this is usually one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. Nil
	// means the response Content is raw text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero when unset.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "roadmap-edit".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema
	// was requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
