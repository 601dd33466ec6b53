package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"questions":[{"question":"Q","answer":"A"}]}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "Return JSON only.",
		Messages:  []Message{{Role: RoleUser, Content: "Make questions."}},
		MaxTokens: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[{"question":"Q","answer":"A"}]}`, resp.Content)
	assert.Equal(t, 80, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestAnthropicProvider_ErrorStatus(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"max_tokens too large"}}`))
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 10})
	var up *ErrUpstream
	require.True(t, errors.As(err, &up), "expected ErrUpstream, got %T", err)
	assert.Equal(t, http.StatusBadRequest, up.StatusCode)
	assert.Equal(t, "max_tokens too large", up.Message)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "custom-model", resolveModel("custom-model", openaiModels))
}
