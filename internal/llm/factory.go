package llm

import (
	"context"
	"fmt"

	"github.com/careercompass/compass/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		// OpenRouter speaks the OpenAI API; route it through that
		// adapter with the OpenRouter endpoint.
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from COMPASS_* configuration,
// falling back to discovery of standard API key env vars.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
