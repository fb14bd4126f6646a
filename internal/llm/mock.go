package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockJSON builds a canned response holding v encoded as JSON.
func MockJSON(v any) MockResponse {
	data, err := json.Marshal(v)
	if err != nil {
		return MockResponse{Err: err}
	}
	return MockResponse{Content: data}
}

// MockText builds a canned free-text response.
func MockText(s string) MockResponse {
	return MockResponse{Content: json.RawMessage(s)}
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
// Like the real providers it unwraps fences and validates content against
// the request schema.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	byPurpose map[string][]MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response for the request's purpose, else
// the next shared response, else ErrProviderUnavailable.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	purpose := PurposeFrom(ctx)
	switch {
	case len(m.byPurpose[purpose]) > 0:
		resp = m.byPurpose[purpose][0]
		m.byPurpose[purpose] = m.byPurpose[purpose][1:]
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	default:
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	content, err := finish(req, string(resp.Content), StopEnd)
	if err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: resp.Usage, Model: "mock", StopReason: StopEnd}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// On queues a response served only to requests tagged with purpose (see
// WithPurpose). Purpose queues are consulted before the shared queue, which
// keeps concurrent callers deterministic.
func (m *MockProvider) On(purpose string, resp MockResponse) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byPurpose == nil {
		m.byPurpose = make(map[string][]MockResponse)
	}
	m.byPurpose[purpose] = append(m.byPurpose[purpose], resp)
	return m
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
