package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dayne-app/dayne/ent"
	"github.com/dayne-app/dayne/ent/llmrequestevent"
)

// LLMEventRepo implements EventRepo and the read side used by `dayne llm`.
type LLMEventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *LLMEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns events newest first.
func (r *LLMEventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	out := make([]LLMEvent, len(rows))
	for i, row := range rows {
		out[i] = toLLMEvent(row)
	}
	return out, nil
}

// GetLLMEvent returns the event with id, or nil when it does not exist.
func (r *LLMEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	ev := toLLMEvent(row)
	return &ev, nil
}

// LLMUsageByPurpose aggregates calls and tokens per purpose label.
func (r *LLMEventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(AVG(latency_ms), 0)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.Failures, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

// LLMUsageByModel aggregates successful calls and tokens per model.
func (r *LLMEventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model,
		       COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func toLLMEvent(row *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
