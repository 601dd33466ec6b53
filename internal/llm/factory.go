package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging. A missing credential does not fail here: the returned provider
// reports ErrNotConfigured on its first Generate call.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger zerolog.Logger) (Provider, error) {
	var base Provider
	var err error

	if verr := cfg.Validate(); verr != nil {
		if cfg.Provider == "anthropic" || cfg.Provider == "openai" || cfg.Provider == "gemini" || cfg.Provider == "openrouter" {
			return &unconfigured{provider: cfg.Provider, err: verr}, nil
		}
		return nil, verr
	}

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo, logger)
	}
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

type unconfigured struct {
	provider string
	err      error
}

func (u *unconfigured) Generate(context.Context, Request) (*Response, error) { return nil, u.err }
func (u *unconfigured) ModelID() string                                    { return u.provider }

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds each Generate call by d.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }
