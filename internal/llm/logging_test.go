package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/store"
)

type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Content: "{}", Usage: Usage{InputTokens: 12, OutputTokens: 7}})
	p := WithLogging(mock, "openai", repo, zerolog.Nop())

	ctx := WithPurpose(context.Background(), PurposeQuestions)
	_, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 2000, Temperature: 0.3})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "openai", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, PurposeQuestions, ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 7, ev.OutputTokens)
	assert.Equal(t, "{}", ev.ResponseBody)
	assert.Contains(t, ev.RequestBody, "[system]\nsys")
	assert.Contains(t, ev.RequestBody, "max_tokens=2000")
}

func TestLoggingProvider_RecordsFailureAndIgnoresRepoError(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	want := errors.New("upstream down")
	p := WithLogging(NewMockProvider(MockResponse{Err: want}), "openai", repo, zerolog.Nop())

	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, want)
	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Equal(t, "upstream down", repo.events[0].ErrorMessage)
}
