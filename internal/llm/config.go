package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend: "openai", "anthropic", "gemini",
	// "openrouter" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single request. Zero means no limit beyond the
	// caller's context.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible gateways.
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Default: https://openrouter.ai/api/v1
}

// DefaultConfig returns a Config targeting OpenAI's gpt-3.5-turbo.
func DefaultConfig() Config {
	return Config{
		Provider:   "openai",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-3.5-turbo"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-3.5-turbo"},
		Timeout:    60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from DAYNE_* variables. When no DAYNE_ key
// is set for the selected provider, the standard vendor variables are
// consulted via DiscoverConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	explicitProvider := false

	if p := os.Getenv("DAYNE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		explicitProvider = true
	}

	setIf(&cfg.Anthropic.APIKey, "DAYNE_ANTHROPIC_API_KEY")
	setIf(&cfg.Anthropic.Model, "DAYNE_ANTHROPIC_MODEL")
	setIf(&cfg.OpenAI.APIKey, "DAYNE_OPENAI_API_KEY")
	setIf(&cfg.OpenAI.Model, "DAYNE_OPENAI_MODEL")
	setIf(&cfg.OpenAI.BaseURL, "DAYNE_OPENAI_BASE_URL")
	setIf(&cfg.Gemini.APIKey, "DAYNE_GEMINI_API_KEY")
	setIf(&cfg.Gemini.Model, "DAYNE_GEMINI_MODEL")
	setIf(&cfg.OpenRouter.APIKey, "DAYNE_OPENROUTER_API_KEY")
	setIf(&cfg.OpenRouter.Model, "DAYNE_OPENROUTER_MODEL")
	setIf(&cfg.OpenRouter.BaseURL, "DAYNE_OPENROUTER_BASE_URL")

	if t := os.Getenv("DAYNE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	if cfg.Validate() != nil {
		if found, ok := DiscoverConfig(); ok && (!explicitProvider || found.Provider == cfg.Provider) {
			found.Timeout = cfg.Timeout
			mergeModels(&found, cfg)
			return found
		}
	}
	return cfg
}

// DiscoverConfig checks the standard vendor key variables
// (OpenAI → Anthropic → Gemini → OpenRouter) and returns a Config for the
// first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set. A
// missing key yields an error wrapping ErrNotConfigured.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("%w: DAYNE_ANTHROPIC_API_KEY is required for the anthropic provider", ErrNotConfigured)
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: DAYNE_OPENAI_API_KEY is required for the openai provider", ErrNotConfigured)
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("%w: DAYNE_GEMINI_API_KEY is required for the gemini provider", ErrNotConfigured)
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("%w: DAYNE_OPENROUTER_API_KEY is required for the openrouter provider", ErrNotConfigured)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func setIf(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// mergeModels keeps model overrides from the DAYNE_ variables when the
// key itself came from a vendor variable.
func mergeModels(dst *Config, src Config) {
	dst.Anthropic.Model = src.Anthropic.Model
	dst.OpenAI.Model = src.OpenAI.Model
	dst.OpenAI.BaseURL = src.OpenAI.BaseURL
	dst.Gemini.Model = src.Gemini.Model
	dst.OpenRouter.Model = src.OpenRouter.Model
	dst.OpenRouter.BaseURL = src.OpenRouter.BaseURL
}
