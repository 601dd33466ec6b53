package store

import (
	"context"
	"fmt"

	"github.com/dayne-app/dayne/ent"
	"github.com/dayne-app/dayne/ent/studysession"
)

// StudySessionStore implements StudySessionRepo.
type StudySessionStore struct {
	client *ent.Client
}

func (r *StudySessionStore) RecordStudySession(ctx context.Context, data StudySessionData) (int, error) {
	row, err := r.client.StudySession.Create().
		SetUserID(data.UserID).
		SetNillableUploadID(data.UploadID).
		SetMode(studysession.Mode(data.Mode)).
		SetNillableScore(data.Score).
		SetTotalQuestions(data.Total).
		SetTimeSpentSecs(data.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("record study session: %w", err)
	}
	return row.ID, nil
}

// ListStudySessions returns a user's study runs, newest first.
func (r *StudySessionStore) ListStudySessions(ctx context.Context, userID string, limit int) ([]StudySession, error) {
	q := r.client.StudySession.Query().
		Where(studysession.UserID(userID)).
		Order(ent.Desc(studysession.FieldCompletedAt), ent.Desc(studysession.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	out := make([]StudySession, len(rows))
	for i, row := range rows {
		out[i] = StudySession{
			ID:          row.ID,
			CompletedAt: row.CompletedAt,
			StudySessionData: StudySessionData{
				UserID:        row.UserID,
				UploadID:      row.UploadID,
				Mode:          string(row.Mode),
				Score:         row.Score,
				Total:         row.TotalQuestions,
				TimeSpentSecs: row.TimeSpentSecs,
			},
		}
	}
	return out, nil
}
