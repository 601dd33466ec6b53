package questiongen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
)

// sourceText is 120 characters of plain prose.
var sourceText = strings.Repeat("Photosynthesis converts light into chemical energy. ", 3)[:120]

func batchJSON(n int) string {
	var b strings.Builder
	b.WriteString(`{"questions":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"question":"Q%d?","answer":"A%d","options":["A%d","B","C","D"]}`, i, i, i)
	}
	b.WriteString("]}")
	return b.String()
}

func newTestGenerator(mock *llm.MockProvider) *LLMGenerator {
	return New(mock, DefaultConfig(), zerolog.Nop())
}

func TestGenerate_ReturnsExactlyWhatUpstreamReturned(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(5)})
	gen := newTestGenerator(mock)

	qs, err := gen.Generate(context.Background(), Input{Text: sourceText, Language: i18n.English, Count: 10})
	require.NoError(t, err)
	require.Len(t, qs, 5)
	assert.Equal(t, 1, mock.CallCount())

	seen := map[string]bool{}
	for i, q := range qs {
		assert.Equal(t, fmt.Sprintf("Q%d?", i), q.Text)
		assert.True(t, q.HasOption(q.Answer), "answer %q not among options", q.Answer)
		assert.Equal(t, TypeMultipleChoice, q.Type)
		assert.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(1)})
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), Input{Text: sourceText, Language: i18n.English, Count: 7})
	require.NoError(t, err)

	req := mock.Calls[0]
	assert.Equal(t, 2000, req.MaxTokens)
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	assert.Contains(t, req.System, "JSON")
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "EXACTLY 7")
	assert.Contains(t, req.Messages[0].Content, sourceText)
}

func TestGenerate_TextTooShortMakesNoCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(3)})
	gen := newTestGenerator(mock)

	short := strings.Repeat("a", 99)
	_, err := gen.Generate(context.Background(), Input{Text: short, Language: i18n.English, Count: 3})
	assert.ErrorIs(t, err, ErrTextTooShort)

	// Surrounding whitespace does not count toward the minimum.
	_, err = gen.Generate(context.Background(), Input{Text: "   " + short + "\n\n\n", Language: i18n.English, Count: 3})
	assert.ErrorIs(t, err, ErrTextTooShort)

	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_ExactlyMinimumLength(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(1)})
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), Input{Text: strings.Repeat("ә", 100), Language: i18n.Kazakh, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerate_InvalidCount(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), Input{Text: sourceText, Count: 0})
	assert.ErrorIs(t, err, ErrInvalidCount)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_FencedEqualsUnfenced(t *testing.T) {
	raw := batchJSON(3)
	for _, content := range []string{
		"```json\n" + raw + "\n```",
		"```\n" + raw + "\n```",
		"  ```JSON\n" + raw + "```  ",
	} {
		plain, err := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: raw})).
			Generate(context.Background(), Input{Text: sourceText, Count: 3})
		require.NoError(t, err)
		fenced, err := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: content})).
			Generate(context.Background(), Input{Text: sourceText, Count: 3})
		require.NoError(t, err)

		require.Len(t, fenced, len(plain))
		for i := range plain {
			assert.Equal(t, plain[i].Text, fenced[i].Text)
			assert.Equal(t, plain[i].Answer, fenced[i].Answer)
			assert.Equal(t, plain[i].Options, fenced[i].Options)
		}
	}
}

func TestGenerate_Unparseable(t *testing.T) {
	for _, content := range []string{
		"Sure! Here are your questions.",
		`{"questions": "none"}`,
		`{"questions":[{"question":"","answer":"x"}]}`,
		`{"questions":[{"question":"Q?"}]}`,
	} {
		gen := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: content}))
		_, err := gen.Generate(context.Background(), Input{Text: sourceText, Count: 3})
		assert.ErrorIs(t, err, ErrUnparseable, "content %q", content)
	}
}

func TestGenerate_NoQuestions(t *testing.T) {
	for _, content := range []string{`{"questions":[]}`, `{"questions":null}`, `{}`, `{"items":[1]}`} {
		gen := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: content}))
		_, err := gen.Generate(context.Background(), Input{Text: sourceText, Count: 3})
		assert.ErrorIs(t, err, ErrNoQuestions, "content %q", content)
		assert.NotErrorIs(t, err, ErrUnparseable)
	}
	assert.NotEqual(t, ErrNoQuestions.Error(), ErrUnparseable.Error())
}

func TestGenerate_MissingOptionsGetPlaceholders(t *testing.T) {
	content := `{"questions":[{"question":"Q?","answer":"Yes"}]}`

	en, err := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: content})).
		Generate(context.Background(), Input{Text: sourceText, Language: i18n.English, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "Option A", "Option B", "Option C"}, en[0].Options)

	kz, err := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: content})).
		Generate(context.Background(), Input{Text: sourceText, Language: i18n.Kazakh, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "Нұсқа A", "Нұсқа B", "Нұсқа C"}, kz[0].Options)
}

func TestGenerate_OptionsKeptVerbatim(t *testing.T) {
	content := `{"questions":[{"question":"Q?","answer":"Paris","options":["London","Rome"]}]}`
	qs, err := newTestGenerator(llm.NewMockProvider(llm.MockResponse{Content: content})).
		Generate(context.Background(), Input{Text: sourceText, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "Rome"}, qs[0].Options)
	assert.False(t, qs[0].HasOption("Paris"))
}

func TestGenerate_UpstreamErrorCarriesMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrUpstream{StatusCode: 401, Message: "Incorrect API key provided"},
	})
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), Input{Text: sourceText, Count: 3})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 401, ue.Status)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerate_RateLimitIsNotRetried(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		llm.MockResponse{Content: batchJSON(1)},
	)
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), Input{Text: sourceText, Count: 1})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerate_NotConfiguredPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("openai: %w", llm.ErrNotConfigured)})
	_, err := newTestGenerator(mock).Generate(context.Background(), Input{Text: sourceText, Count: 1})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	var ue *UpstreamError
	assert.False(t, errors.As(err, &ue))
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(1)})
	_, err := newTestGenerator(mock).Generate(ctx, Input{Text: sourceText, Count: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_SetsPurpose(t *testing.T) {
	var got string
	p := providerFunc(func(ctx context.Context, _ llm.Request) (*llm.Response, error) {
		got = llm.PurposeFrom(ctx)
		return &llm.Response{Content: batchJSON(1)}, nil
	})
	_, err := New(p, DefaultConfig(), zerolog.Nop()).Generate(context.Background(), Input{Text: sourceText, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, llm.PurposeQuestions, got)
}

type providerFunc func(ctx context.Context, req llm.Request) (*llm.Response, error)

func (f providerFunc) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
