package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/svenska/internal/llm"
)

// isolate points config discovery at an empty temp dir and clears provider
// keys inherited from the developer's shell.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SVENSKA_CONFIG", "")
	for _, k := range []string{
		"SVENSKA_GEMINI_API_KEY", "SVENSKA_ANTHROPIC_API_KEY",
		"SVENSKA_OPENAI_API_KEY", "SVENSKA_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 20, cfg.Content.Words)
	assert.Equal(t, 60, cfg.Content.ChallengeSeconds)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, `
llm:
  provider: openai
  timeout: 15s
  openai:
    api_key: sk-from-file
    model: gpt-4o
log:
  level: debug
  format: json
content:
  words: 10
`)
	t.Setenv("SVENSKA_OPENAI_API_KEY", "sk-from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "sk-from-env", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Content.Words)
	assert.Equal(t, 20, cfg.Content.GrammarCount)
}

func TestLoad_DefaultPathFromXDG(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "svenska"), 0o755))
	writeYAML(t, filepath.Join(dir, "svenska"), "llm:\n  provider: mock\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown provider", "llm:\n  provider: ollama\n"},
		{"bad level", "log:\n  level: verbose\n"},
		{"too few words", "content:\n  words: 3\n"},
		{"bad base url", "llm:\n  openai:\n    base_url: not a url\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			_, err := Load(writeYAML(t, dir, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate")
		})
	}
}

func TestLLMConfig_Mapping(t *testing.T) {
	isolate(t)
	cfg := &Config{LLM: LLMConfig{
		Provider:    "anthropic",
		Timeout:     20 * time.Second,
		MaxAttempts: 2,
		Anthropic:   ProviderConfig{APIKey: "sk-ant-123"},
	}}

	got := cfg.LLMConfig()
	assert.Equal(t, "anthropic", got.Provider)
	assert.Equal(t, "sk-ant-123", got.Anthropic.APIKey)
	assert.Equal(t, "claude-haiku", got.Anthropic.Model)
	assert.Equal(t, 20*time.Second, got.Timeout)
	assert.Equal(t, 2, got.Retry.MaxAttempts)
	assert.NoError(t, got.Validate())
}

func TestLLMConfig_PlaceholderFallsBackToDiscovery(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-discovered")
	cfg := &Config{LLM: LLMConfig{
		Provider:    "gemini",
		Timeout:     time.Minute,
		MaxAttempts: 3,
		Gemini:      ProviderConfig{APIKey: llm.PlaceholderKey},
	}}

	got := cfg.LLMConfig()
	assert.Equal(t, "openai", got.Provider)
	assert.Equal(t, "sk-discovered", got.OpenAI.APIKey)
	assert.Equal(t, time.Minute, got.Timeout)
}

func TestLLMConfig_NoKeyAnywhere(t *testing.T) {
	isolate(t)
	cfg := &Config{LLM: LLMConfig{Provider: "gemini", Timeout: time.Minute, MaxAttempts: 3}}

	got := cfg.LLMConfig()
	assert.ErrorIs(t, got.Validate(), llm.ErrMissingKey)
}

func TestLoggingConfig(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "console"}}

	cli, err := cfg.LoggingConfig(false)
	require.NoError(t, err)
	assert.Empty(t, cli.File)

	tui, err := cfg.LoggingConfig(true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/state", "svenska", "svenska.log"), tui.File)
}

func TestMasked(t *testing.T) {
	cfg := Config{LLM: LLMConfig{
		Gemini:    ProviderConfig{APIKey: "AIzaSyABCDEFGH1234"},
		OpenAI:    ProviderConfig{APIKey: "short"},
		Anthropic: ProviderConfig{APIKey: llm.PlaceholderKey},
	}}

	m := cfg.Masked()
	assert.Equal(t, "AIza****1234", m.LLM.Gemini.APIKey)
	assert.Equal(t, "****", m.LLM.OpenAI.APIKey)
	assert.Equal(t, llm.PlaceholderKey, m.LLM.Anthropic.APIKey)
	assert.Equal(t, "", m.LLM.OpenRouter.APIKey)
	assert.Equal(t, "AIzaSyABCDEFGH1234", cfg.LLM.Gemini.APIKey, "original unchanged")
}
