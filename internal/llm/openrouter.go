package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider routes requests through OpenRouter's OpenAI-compatible
// API. Model IDs are vendor-qualified ("google/gemini-2.0-flash-001") and
// are passed through without friendly-name mapping.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if !IsUsableKey(cfg.APIKey) {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return &OpenRouterProvider{
		OpenAIProvider: newOpenAICompatible(cfg.APIKey, baseURL, cfg.Model),
	}, nil
}
