package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func okResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func downError() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetryBehavior(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{okResponse()},
			wantCalls: 1,
		},
		{
			name:      "transient failure then success",
			responses: []MockResponse{downError(), okResponse()},
			wantCalls: 2,
		},
		{
			name:      "all attempts exhausted",
			responses: []MockResponse{downError(), downError(), downError()},
			wantErr:   true,
			wantCalls: 3,
		},
		{
			name: "truncation is terminal",
			responses: []MockResponse{
				{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
			},
			wantErr:   true,
			wantCalls: 1,
		},
		{
			name: "schema failure gets exactly one retry",
			responses: []MockResponse{
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
				okResponse(), // never reached
			},
			wantErr:   true,
			wantCalls: 2,
		},
		{
			name: "rate limit waits out RetryAfter then succeeds",
			responses: []MockResponse{
				{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
				okResponse(),
			},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, fastRetry())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(resp.Content) != `{"ok":true}` {
					t.Fatalf("unexpected content: %s", resp.Content)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}

func TestRetryPreservesErrorType(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(downError(), downError(), okResponse())
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
