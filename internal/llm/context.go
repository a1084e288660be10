package llm

import "context"

type contextKey struct{}

var purposeKey contextKey

// WithPurpose tags ctx with a purpose label ("roadmap-gen",
// "roadmap-edit", "test-gen") so the event log can attribute the call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown" for
// untagged contexts.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
