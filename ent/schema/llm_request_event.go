package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is the audit row for a single LLM API call. One row
// is appended per call, success or failure, with the full prompt and
// response bodies for debugging and cost review.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("anthropic, openai, gemini, or openrouter"),
		field.String("model").
			Comment("Model ID the provider reported serving"),
		field.String("purpose").
			Comment("What the call was for: roadmap-gen, roadmap-edit, test-gen"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("End-to-end request duration"),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Empty on success"),
		field.Text("request_body").
			Default("").
			Comment("Rendered prompt transcript including the schema"),
		field.Text("response_body").
			Default("").
			Comment("Raw model output"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
