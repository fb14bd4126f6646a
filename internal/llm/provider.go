package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per request. Implementations talk to a
// model API; decorators add retries, timeouts and logging on top.
type Provider interface {
	// Generate returns the model's answer to req. When req.Schema is set the
	// content is JSON that has been checked against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

// Request is a single prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema asks for structured output. Without one the model's text is
	// returned untouched.
	Schema *Schema

	MaxTokens int
	// Temperature is sent only when positive; zero leaves the provider
	// default in place.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema for structured output. Name must be unique per
// Definition; compiled schemas are cached by it.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a model answer. StopReason is StopEnd or StopMaxTokens.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the content as trimmed plain text with any code fence removed.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return UnwrapFences(string(r.Content))
}

type purposeKey struct{}

// WithPurpose labels the requests made with ctx, e.g. "daily-words". The
// label ends up in the request log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
