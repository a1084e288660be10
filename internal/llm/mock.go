package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for a MockProvider. Set Err to
// make the call fail instead of returning content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and records every
// request, so tests can drive the middleware chain without a network.
// Safe for concurrent use.
type MockProvider struct {
	mu     sync.Mutex
	queue  []MockResponse
	served int

	Calls []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// AddResponse queues another scripted response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

func (m *MockProvider) ModelID() string { return "mock" }

// Generate serves the next scripted response. A drained queue reports
// ErrProviderUnavailable, which surfaces as a test failure rather than
// a hang when a test under-provisions responses.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.served >= len(m.queue) {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[m.served]
	m.served++

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// CallCount reports how many Generate calls have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
