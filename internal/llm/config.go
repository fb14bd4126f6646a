package llm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// PlaceholderKey is the value shipped in example configs. It never counts as
// a configured key.
const PlaceholderKey = "YOUR_API_KEY_HERE"

// ErrMissingKey is returned by Validate when the selected provider has no
// usable API key.
var ErrMissingKey = errors.New("API key not configured")

// Config selects a provider and carries the settings of every provider, so
// switching Provider needs no other change.
type Config struct {
	Provider string // gemini, anthropic, openai, openrouter or mock

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig also serves OpenAI-compatible gateways through BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff of WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses Gemini Flash, three attempts and a one minute timeout.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-2.5-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: time.Minute,
	}
}

// wellKnownKeys are the vendors' own key variables, probed in this order
// when no key is configured.
var wellKnownKeys = []struct{ provider, env string }{
	{"gemini", "GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"anthropic", "ANTHROPIC_API_KEY"},
	{"openrouter", "OPENROUTER_API_KEY"},
}

// DiscoverConfig returns the defaults with the first usable key found in
// wellKnownKeys.
func DiscoverConfig() (Config, bool) {
	for _, k := range wellKnownKeys {
		v := os.Getenv(k.env)
		if !usableKey(v) {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = k.provider
		key, _ := cfg.fields(k.provider)
		*key = v
		return cfg, true
	}
	return Config{}, false
}

// fields points at the key and model of the named provider. Both are nil
// for providers without credentials.
func (c *Config) fields(provider string) (key, model *string) {
	switch provider {
	case "anthropic":
		return &c.Anthropic.APIKey, &c.Anthropic.Model
	case "openai":
		return &c.OpenAI.APIKey, &c.OpenAI.Model
	case "gemini":
		return &c.Gemini.APIKey, &c.Gemini.Model
	case "openrouter":
		return &c.OpenRouter.APIKey, &c.OpenRouter.Model
	}
	return nil, nil
}

// APIKey returns the key of the selected provider.
func (c Config) APIKey() string {
	if key, _ := c.fields(c.Provider); key != nil {
		return *key
	}
	return ""
}

// Model returns the configured model name of the selected provider.
func (c Config) Model() string {
	if c.Provider == "mock" {
		return "mock"
	}
	if _, model := c.fields(c.Provider); model != nil {
		return *model
	}
	return ""
}

// Validate checks that the selected provider exists and has a usable key.
// Missing keys wrap ErrMissingKey.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key, _ := c.fields(c.Provider)
	switch {
	case key == nil:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	case !usableKey(*key):
		env := "SVENSKA_" + strings.ToUpper(c.Provider) + "_API_KEY"
		return fmt.Errorf("%w: set %s for the %s provider", ErrMissingKey, env, c.Provider)
	}
	return nil
}

func usableKey(k string) bool {
	k = strings.TrimSpace(k)
	return k != "" && k != PlaceholderKey
}
