package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-3.5-turbo",
	}
}

func writeCompletion(w http.ResponseWriter, content, finish string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-3.5-turbo-0125",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	})
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": message, "type": "invalid_request_error"},
	})
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var body map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeCompletion(w, "```json\n{\"questions\":[]}\n```", "stop")
	})

	resp, err := p.Generate(context.Background(), Request{
		System:      "Return JSON only.",
		Messages:    []Message{{Role: RoleUser, Content: "Make questions."}},
		MaxTokens:   2000,
		Temperature: 0.3,
	})
	require.NoError(t, err)

	assert.Equal(t, "```json\n{\"questions\":[]}\n```", resp.Content)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, "gpt-3.5-turbo-0125", resp.Model)
	assert.Equal(t, "end", resp.StopReason)

	assert.Equal(t, "gpt-3.5-turbo", body["model"])
	assert.EqualValues(t, 2000, body["max_tokens"])
	assert.InDelta(t, 0.3, body["temperature"], 0.001)
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
}

func TestOpenAIProvider_Length(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "{\"questions\":[", "length")
	})
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, "max_tokens", resp.StopReason)
}

func TestOpenAIProvider_UpstreamMessage(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusUnauthorized, "Incorrect API key provided")
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	require.Error(t, err)

	var up *ErrUpstream
	require.True(t, errors.As(err, &up), "expected ErrUpstream, got %T", err)
	assert.Equal(t, http.StatusUnauthorized, up.StatusCode)
	assert.Equal(t, "Incorrect API key provided", up.Message)
	assert.Equal(t, "Incorrect API key provided", UpstreamMessage(err))
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	calls := 0
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeAPIError(w, http.StatusTooManyRequests, "Rate limit reached")
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var rl *ErrRateLimit
	require.True(t, errors.As(err, &rl), "expected ErrRateLimit, got %T", err)
	var up *ErrUpstream
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "Rate limit reached", up.Message)
	assert.Equal(t, 1, calls)
}

func TestOpenAIProvider_Unreachable(t *testing.T) {
	config := openai.DefaultConfig("test-key")
	config.BaseURL = "http://127.0.0.1:1/v1"
	p := &OpenAIProvider{client: openai.NewClientWithConfig(config), model: "gpt-3.5-turbo"}

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable), "expected ErrProviderUnavailable, got %T", err)
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"gpt-3.5-turbo","choices":[]}`))
	})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-3.5"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", p.ModelID())
}

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "openai/gpt-3.5-turbo"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "openai/gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", p.ModelID())
}
