package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
)

// LLMGenerator implements Generator with a chat-completion provider. It
// makes exactly one provider call per Generate.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   zerolog.Logger
	newID    func() string
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, logger zerolog.Logger) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

func (g *LLMGenerator) Generate(ctx context.Context, in Input) ([]Question, error) {
	if err := checkInput(in, g.config.MinTextLength); err != nil {
		return nil, err
	}
	lang := in.Language
	if !lang.Valid() {
		lang = i18n.Default
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt(lang),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in.Text, lang, in.Count, g.config.MaxTextLength)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if errors.Is(err, llm.ErrNotConfigured) {
			return nil, err
		}
		return nil, upstreamError(err)
	}

	questions, err := g.parse(resp.Content, lang)
	if err != nil {
		g.logger.Warn().Err(err).Str("model", resp.Model).Msg("unusable question payload")
		return nil, err
	}

	g.logger.Info().
		Int("requested", in.Count).
		Int("returned", len(questions)).
		Str("language", lang.String()).
		Msg("questions generated")
	return questions, nil
}

func (g *LLMGenerator) parse(content string, lang i18n.Language) ([]Question, error) {
	raw := stripFences(content)

	doc, err := llm.DecodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if err := llm.ValidateJSON(PayloadSchema, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if len(p.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	out := make([]Question, len(p.Questions))
	for i, q := range p.Questions {
		opts := q.Options
		if opts == nil {
			opts = placeholderOptions(q.Answer, lang)
		}
		out[i] = Question{
			ID:         g.newID(),
			Text:       q.Question,
			Answer:     q.Answer,
			Options:    opts,
			Type:       TypeMultipleChoice,
			Difficulty: q.Difficulty,
		}
	}
	return out, nil
}
