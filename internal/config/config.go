// Package config loads svenska's YAML and environment configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/abhisek/svenska/internal/llm"
	"github.com/abhisek/svenska/internal/logging"
)

// Config is the root application configuration.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Content ContentConfig `yaml:"content"`
}

// LLMConfig selects and configures the content provider.
type LLMConfig struct {
	Provider    string        `yaml:"provider"     env:"SVENSKA_LLM_PROVIDER"     env-default:"gemini" validate:"oneof=gemini anthropic openai openrouter mock"`
	Timeout     time.Duration `yaml:"timeout"      env:"SVENSKA_LLM_TIMEOUT"      env-default:"60s"    validate:"gt=0"`
	MaxAttempts int           `yaml:"max_attempts" env:"SVENSKA_LLM_MAX_ATTEMPTS" env-default:"3"      validate:"min=1,max=10"`

	Gemini     ProviderConfig `yaml:"gemini"     env-prefix:"SVENSKA_GEMINI_"`
	Anthropic  ProviderConfig `yaml:"anthropic"  env-prefix:"SVENSKA_ANTHROPIC_"`
	OpenAI     ProviderConfig `yaml:"openai"     env-prefix:"SVENSKA_OPENAI_"`
	OpenRouter ProviderConfig `yaml:"openrouter" env-prefix:"SVENSKA_OPENROUTER_"`
}

// ProviderConfig holds one provider's credentials. An empty Model uses the
// provider default.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"  env:"API_KEY"`
	Model   string `yaml:"model"    env:"MODEL"`
	BaseURL string `yaml:"base_url" env:"BASE_URL" validate:"omitempty,url"`
}

// DBConfig locates the SQLite database. Empty uses the XDG data path.
type DBConfig struct {
	Path string `yaml:"path" env:"SVENSKA_DB"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SVENSKA_LOG_LEVEL"  env-default:"info"    validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"SVENSKA_LOG_FORMAT" env-default:"console" validate:"oneof=console json"`
	File   string `yaml:"file"   env:"SVENSKA_LOG_FILE"`
}

// ContentConfig sizes the generated practice material.
type ContentConfig struct {
	Words            int `yaml:"words"             env:"SVENSKA_WORDS"             env-default:"20" validate:"min=5,max=50"`
	ScrambleCount    int `yaml:"scramble_count"    env:"SVENSKA_SCRAMBLE_COUNT"    env-default:"20" validate:"min=1,max=50"`
	GrammarCount     int `yaml:"grammar_count"     env:"SVENSKA_GRAMMAR_COUNT"     env-default:"20" validate:"min=1,max=50"`
	ChallengeSeconds int `yaml:"challenge_seconds" env:"SVENSKA_CHALLENGE_SECONDS" env-default:"60" validate:"min=10,max=600"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// path overrides the default location; an explicit path that does not exist
// is an error, a missing default file is not.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
		explicit = os.Getenv("SVENSKA_CONFIG") != ""
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// DefaultPath resolves the config file path in priority order:
// 1. SVENSKA_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/svenska/config.yaml
// 3. ~/.config/svenska/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("SVENSKA_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "svenska", "config.yaml"), nil
}

var validate = validator.New()

// Validate checks field constraints. API keys are not required here: a
// missing key is reported by the TUI instead of failing startup.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// LLMConfig maps the loaded settings onto llm.Config. When no provider key
// is configured at all, the standard *_API_KEY variables are probed.
func (c *Config) LLMConfig() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	out.Timeout = c.LLM.Timeout
	out.Retry.MaxAttempts = c.LLM.MaxAttempts

	apply := func(p ProviderConfig, key, model *string) {
		*key = p.APIKey
		if p.Model != "" {
			*model = p.Model
		}
	}
	apply(c.LLM.Gemini, &out.Gemini.APIKey, &out.Gemini.Model)
	apply(c.LLM.Anthropic, &out.Anthropic.APIKey, &out.Anthropic.Model)
	apply(c.LLM.OpenAI, &out.OpenAI.APIKey, &out.OpenAI.Model)
	apply(c.LLM.OpenRouter, &out.OpenRouter.APIKey, &out.OpenRouter.Model)
	out.OpenAI.BaseURL = c.LLM.OpenAI.BaseURL
	out.OpenRouter.BaseURL = c.LLM.OpenRouter.BaseURL

	if out.Provider != "mock" && !c.anyKey() {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Timeout = out.Timeout
			found.Retry = out.Retry
			return found
		}
	}
	return out
}

func (c *Config) anyKey() bool {
	for _, p := range []ProviderConfig{c.LLM.Gemini, c.LLM.Anthropic, c.LLM.OpenAI, c.LLM.OpenRouter} {
		if k := strings.TrimSpace(p.APIKey); k != "" && k != llm.PlaceholderKey {
			return true
		}
	}
	return false
}

// LoggingConfig returns the logger settings. When tui is set and no file is
// configured, logs go to the default state file so they do not corrupt the
// terminal.
func (c *Config) LoggingConfig(tui bool) (logging.Config, error) {
	out := logging.Config{Level: c.Log.Level, Format: c.Log.Format, File: c.Log.File}
	if tui && out.File == "" {
		p, err := logging.DefaultFile()
		if err != nil {
			return out, err
		}
		out.File = p
	}
	return out, nil
}

// Masked returns a copy with API keys redacted for display.
func (c Config) Masked() Config {
	c.LLM.Gemini.APIKey = maskKey(c.LLM.Gemini.APIKey)
	c.LLM.Anthropic.APIKey = maskKey(c.LLM.Anthropic.APIKey)
	c.LLM.OpenAI.APIKey = maskKey(c.LLM.OpenAI.APIKey)
	c.LLM.OpenRouter.APIKey = maskKey(c.LLM.OpenRouter.APIKey)
	return c
}

func maskKey(k string) string {
	switch {
	case k == "":
		return ""
	case k == llm.PlaceholderKey:
		return k
	case len(k) <= 8:
		return "****"
	}
	return k[:4] + "****" + k[len(k)-4:]
}
