package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/careercompass/compass/internal/store"
)

// LoggingProvider appends one event row per LLM call: transcript,
// response, token usage, latency, and outcome. The event log backs
// `compass llm`.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	// A logging failure must not fail the generation itself.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, event); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

// transcript renders the request as a readable prompt dump for the
// event log.
func transcript(req Request) string {
	var b strings.Builder

	writeSection := func(label, body string) {
		b.WriteString("[" + label + "]\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if req.System != "" {
		writeSection("system", req.System)
	}
	for _, m := range req.Messages {
		writeSection(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n%s\n", req.Schema.Name, def))
		}
	}

	return b.String()
}
