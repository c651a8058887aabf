package llm

import (
	"fmt"
	"strings"
	"time"
)

// PlaceholderAPIKey is the value shipped in example environment files.
// It is treated exactly like an absent key.
const PlaceholderAPIKey = "your_actual_api_key_here"

// Config holds all LLM provider configuration. Fields are decoded from the
// environment by the config package.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string `env:"STUDYBUDDY_LLM_PROVIDER,default=gemini" validate:"required,oneof=gemini openai anthropic openrouter mock"`

	Gemini     GeminiConfig     `env:""`
	OpenAI     OpenAIConfig     `env:""`
	Anthropic  AnthropicConfig  `env:""`
	OpenRouter OpenRouterConfig `env:""`
	Retry      RetryConfig      `env:""`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string `env:"STUDYBUDDY_GEMINI_API_KEY"`
	Model   string `env:"STUDYBUDDY_GEMINI_MODEL,default=gemini-flash"`
	BaseURL string `env:"STUDYBUDDY_GEMINI_BASE_URL"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `env:"STUDYBUDDY_OPENAI_API_KEY"`
	Model   string `env:"STUDYBUDDY_OPENAI_MODEL,default=gpt-4o-mini"`
	BaseURL string `env:"STUDYBUDDY_OPENAI_BASE_URL"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `env:"STUDYBUDDY_ANTHROPIC_API_KEY"`
	Model   string `env:"STUDYBUDDY_ANTHROPIC_MODEL,default=claude-haiku"`
	BaseURL string `env:"STUDYBUDDY_ANTHROPIC_BASE_URL"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `env:"STUDYBUDDY_OPENROUTER_API_KEY"`
	Model   string `env:"STUDYBUDDY_OPENROUTER_MODEL,default=google/gemini-2.0-flash-001"`
	BaseURL string `env:"STUDYBUDDY_OPENROUTER_BASE_URL"`
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts defaults to 1: a failed fetch degrades to fallback content
// and the learner refreshes manually.
type RetryConfig struct {
	MaxAttempts int           `env:"STUDYBUDDY_RETRY_ATTEMPTS,default=1" validate:"min=1,max=5"`
	InitialWait time.Duration `env:"STUDYBUDDY_RETRY_INITIAL_WAIT,default=1s"`
	MaxWait     time.Duration `env:"STUDYBUDDY_RETRY_MAX_WAIT,default=10s"`
	Multiplier  float64       `env:"STUDYBUDDY_RETRY_MULTIPLIER,default=2"`
}

// DefaultConfig returns a Config with the same values the environment
// decoder would produce from an empty environment.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// APIKey returns the credential of the selected provider. The mock
// provider needs none and reports a fixed non-empty value.
func (c Config) APIKey() string {
	switch c.Provider {
	case "gemini":
		return c.Gemini.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "anthropic":
		return c.Anthropic.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	case "mock":
		return "mock"
	}
	return ""
}

// HasCredential reports whether the selected provider has a usable key.
// Blank keys and the placeholder value do not count.
func (c Config) HasCredential() bool {
	return IsUsableKey(c.APIKey())
}

// IsUsableKey reports whether key is neither blank nor the placeholder.
func IsUsableKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderAPIKey
}

// Validate checks that the selected provider is known.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini", "openai", "anthropic", "openrouter", "mock":
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
