package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
	}{
		{"default URL", OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.5-flash"}, false},
		{"custom URL", OpenRouterConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku", BaseURL: "https://gw.example/v1"}, false},
		{"friendly names are not mapped", OpenRouterConfig{APIKey: "sk-or", Model: "gpt-mini"}, false},
		{"no key", OpenRouterConfig{Model: "google/gemini-2.5-flash"}, true},
		{"no model", OpenRouterConfig{APIKey: "sk-or"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.cfg.Model {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.cfg.Model)
			}
		})
	}
}
