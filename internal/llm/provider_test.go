package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: "first", Usage: Usage{InputTokens: 1}},
		MockResponse{Content: "second"},
	)

	r1, err := m.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "first", r1.Content)
	assert.Equal(t, 1, r1.Usage.InputTokens)

	r2, err := m.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", r2.Content)

	_, err = m.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable))
	assert.Equal(t, 3, m.CallCount())
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	want := errors.New("boom")
	m := NewMockProvider(MockResponse{Err: want})
	_, err := m.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, want)
}

func TestMockProvider_Cancelled(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPurposeContext(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	ctx := WithPurpose(context.Background(), PurposeQuestions)
	assert.Equal(t, PurposeQuestions, PurposeFrom(ctx))
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.ErrorIs(t, cfg.Validate(), ErrNotConfigured)

	cfg.OpenAI.APIKey = "sk-test"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "nope"
	assert.Error(t, cfg.Validate())
}

func clearLLMEnv(t *testing.T) {
	for _, k := range []string{
		"DAYNE_LLM_PROVIDER", "DAYNE_OPENAI_API_KEY", "DAYNE_OPENAI_MODEL", "DAYNE_OPENAI_BASE_URL",
		"DAYNE_ANTHROPIC_API_KEY", "DAYNE_GEMINI_API_KEY", "DAYNE_OPENROUTER_API_KEY", "DAYNE_LLM_TIMEOUT",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("DAYNE_OPENAI_API_KEY", "sk-dayne")
	t.Setenv("DAYNE_OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("DAYNE_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-dayne", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestConfigFromEnv_DiscoversVendorKey(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := ConfigFromEnv()
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.Anthropic.APIKey)
}

func TestNewProvider_MissingKeyFailsAtGeneration(t *testing.T) {
	p, err := NewProvider(context.Background(), DefaultConfig(), nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "nope"
	_, err := NewProvider(context.Background(), cfg, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestWithTimeout(t *testing.T) {
	slow := providerFunc(func(ctx context.Context, _ Request) (*Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	_, err := WithTimeout(slow, 10*time.Millisecond).Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type providerFunc func(context.Context, Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, r Request) (*Response, error) { return f(ctx, r) }
func (f providerFunc) ModelID() string                                            { return "func" }

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-3.5-turbo-0125")
	require.NotNil(t, c)
	assert.InDelta(t, 0.5, c.InputPerMTok, 1e-9)

	c = LookupCost("openai/gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.15, c.InputPerMTok, 1e-9)

	assert.Nil(t, LookupCost("mock"))
	assert.InDelta(t, 2.0, ModelCost{InputPerMTok: 1, OutputPerMTok: 1}.Cost(1_000_000, 1_000_000), 1e-9)
}
