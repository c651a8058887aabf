package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/teamlowkey/studybuddy/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. It returns ErrMissingAPIKey when the selected
// provider has no usable key so callers can fall back to offline content.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger zerolog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.HasCredential() {
		return nil, ErrMissingAPIKey
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, events, logger)
	return WithRetry(logged, cfg.Retry), nil
}
