package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
	logger    zerolog.Logger
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, providerName string, repo store.EventRepo, logger zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, provider: providerName, eventRepo: repo, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = resp.Content
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A cancelled caller context must not prevent the event from being written.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		l.logger.Warn().Err(logErr).Msg("failed to record LLM request event")
	}

	l.logger.Debug().
		Str("provider", data.Provider).
		Str("model", data.Model).
		Str("purpose", data.Purpose).
		Int64("latency_ms", data.LatencyMs).
		Bool("success", data.Success).
		Msg("llm request")

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "[params] max_tokens=%d temperature=%.2f\n", req.MaxTokens, req.Temperature)
	return b.String()
}
