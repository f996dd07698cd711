package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL allows any
// OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini flash-lite is
// the default because a whole study set fits comfortably in its output budget
// at very low cost.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash-lite"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash-lite"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from TESTPLUS_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	for name, dst := range map[string]*string{
		"TESTPLUS_LLM_PROVIDER":       &cfg.Provider,
		"TESTPLUS_ANTHROPIC_API_KEY":  &cfg.Anthropic.APIKey,
		"TESTPLUS_ANTHROPIC_MODEL":    &cfg.Anthropic.Model,
		"TESTPLUS_OPENAI_API_KEY":     &cfg.OpenAI.APIKey,
		"TESTPLUS_OPENAI_MODEL":       &cfg.OpenAI.Model,
		"TESTPLUS_OPENAI_BASE_URL":    &cfg.OpenAI.BaseURL,
		"TESTPLUS_GEMINI_API_KEY":     &cfg.Gemini.APIKey,
		"TESTPLUS_GEMINI_MODEL":       &cfg.Gemini.Model,
		"TESTPLUS_OPENROUTER_API_KEY": &cfg.OpenRouter.APIKey,
		"TESTPLUS_OPENROUTER_MODEL":   &cfg.OpenRouter.Model,
	} {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("TESTPLUS_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig checks the vendors' conventional API key variables in the
// order Gemini, OpenAI, Anthropic, OpenRouter and returns a Config for the
// first one set. Returns (Config{}, false) if none is.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	candidates := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range candidates {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("an API key is required for the %s provider (set TESTPLUS_%s_API_KEY)",
			c.Provider, envName(c.Provider))
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC"
	case ProviderOpenAI:
		return "OPENAI"
	case ProviderGemini:
		return "GEMINI"
	case ProviderOpenRouter:
		return "OPENROUTER"
	}
	return "?"
}
