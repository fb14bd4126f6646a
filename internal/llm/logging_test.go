package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/svenska/internal/store"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"words":[]}`), Usage: Usage{InputTokens: 12, OutputTokens: 4}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, "gemini", s.EventRepo(), zap.New(core))

	ctx := WithPurpose(context.Background(), "daily-words")
	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hej"}}}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("second call should fail")
	}

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	failed, ok := events[0], events[1]
	if failed.Success || failed.ErrorMessage == "" {
		t.Errorf("newest event should be the failure: %+v", failed)
	}
	if !ok.Success || ok.Provider != "gemini" || ok.Model != "mock" || ok.Purpose != "daily-words" {
		t.Errorf("success event = %+v", ok)
	}
	if ok.InputTokens != 12 || ok.ResponseBody != `{"words":[]}` {
		t.Errorf("tokens/body = %d %q", ok.InputTokens, ok.ResponseBody)
	}

	if n := logs.FilterMessage("llm request failed").Len(); n != 1 {
		t.Errorf("warn entries = %d, want 1", n)
	}
}

func TestLoggingProvider_NilSinks(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestSerializeRequest(t *testing.T) {
	got := serializeRequest(Request{
		System:   "You are a Swedish teacher.",
		Messages: []Message{{Role: RoleUser, Content: "Give me words"}},
		Schema:   &Schema{Name: "daily-words", Definition: map[string]any{"type": "object"}},
	})
	want := "[system]\nYou are a Swedish teacher.\n\n[user]\nGive me words\n\n[schema: daily-words]\n{\"type\":\"object\"}\n"
	if got != want {
		t.Errorf("serializeRequest =\n%q\nwant\n%q", got, want)
	}
}
