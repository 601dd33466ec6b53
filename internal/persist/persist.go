// Package persist saves uploads, generated questions and study history
// for the signed-in user. Every operation is best effort: a failure is
// logged and reported in a Result, never returned in a way that blocks
// the caller's main flow.
package persist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/blob"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/store"
)

// ErrForbidden is returned when a signed-in user asks for another user's upload.
var ErrForbidden = errors.New("upload belongs to another user")

// Result reports the outcome of a best-effort write.
type Result struct {
	// UploadID is the stored upload id, zero when nothing was written.
	UploadID int
	// SessionID is the stored study session id.
	SessionID int
	// Skipped is set when there was nothing to do, typically because
	// nobody is signed in.
	Skipped bool
	Err     error
}

// Saved reports whether the write happened.
func (r Result) Saved() bool { return !r.Skipped && r.Err == nil }

// StudyRecord describes a finished study run.
type StudyRecord struct {
	UploadID *int
	Mode     string
	Score    *int
	Total    int
	Elapsed  time.Duration
}

// Gateway is the persistence collaborator. A nil *Gateway is valid and
// skips every write.
type Gateway struct {
	sessions auth.SessionSource
	uploads  store.UploadRepo
	studies  store.StudySessionRepo
	blobs    blob.Store
	logger   zerolog.Logger
	now      func() time.Time
}

// New creates a Gateway. blobs may be nil, in which case file contents
// are not kept.
func New(sessions auth.SessionSource, uploads store.UploadRepo, studies store.StudySessionRepo, blobs blob.Store, logger zerolog.Logger) *Gateway {
	return &Gateway{
		sessions: sessions,
		uploads:  uploads,
		studies:  studies,
		blobs:    blobs,
		logger:   logger.With().Str("component", "persist").Logger(),
		now:      time.Now,
	}
}

// Session returns the signed-in user, or nil. Lookup errors are logged
// and treated as signed out.
func (g *Gateway) Session(ctx context.Context) *auth.Session {
	if g == nil || g.sessions == nil {
		return nil
	}
	s, err := g.sessions.Session(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("session lookup failed")
		return nil
	}
	return s
}

// SaveUpload stores f and its questions for the signed-in user and marks
// the upload processed. The blob copy is optional: when it fails the
// record is still written without a blob key.
func (g *Gateway) SaveUpload(ctx context.Context, f extract.File, questions []questiongen.Question) Result {
	sess := g.Session(ctx)
	if sess == nil {
		return Result{Skipped: true}
	}

	data := store.UploadData{
		Name:     f.Name,
		UserID:   &sess.UserID,
		FileSize: ptr(f.Size()),
	}
	if f.MIMEType != "" {
		data.FileType = ptr(f.MIMEType)
	}

	if g.blobs != nil {
		key := blob.Key(sess.UserID, f.Name, g.now())
		if err := g.blobs.Put(ctx, key, bytes.NewReader(f.Data), f.Size(), f.MIMEType); err != nil {
			g.logger.Warn().Err(err).Str("key", key).Msg("storing upload contents failed")
		} else {
			data.BlobKey = &key
		}
	}

	id, err := g.uploads.CreateUpload(ctx, data)
	if err != nil {
		return g.fail("create upload", 0, err)
	}
	if err := g.uploads.AddQuestions(ctx, id, toStored(questions)); err != nil {
		return g.fail("add questions", id, err)
	}
	if err := g.uploads.MarkProcessed(ctx, id); err != nil {
		return g.fail("mark processed", id, err)
	}

	g.logger.Info().
		Int("upload_id", id).
		Str("user_id", sess.UserID).
		Int("questions", len(questions)).
		Msg("upload saved")
	return Result{UploadID: id}
}

// RecordStudy writes a finished study run to the signed-in user's history.
func (g *Gateway) RecordStudy(ctx context.Context, rec StudyRecord) Result {
	sess := g.Session(ctx)
	if sess == nil || g.studies == nil {
		return Result{Skipped: true}
	}
	id, err := g.studies.RecordStudySession(ctx, store.StudySessionData{
		UserID:        sess.UserID,
		UploadID:      rec.UploadID,
		Mode:          rec.Mode,
		Score:         rec.Score,
		Total:         rec.Total,
		TimeSpentSecs: int(rec.Elapsed.Round(time.Second) / time.Second),
	})
	if err != nil {
		return g.fail("record study session", 0, err)
	}
	return Result{SessionID: id}
}

// Uploads lists the signed-in user's uploads, newest first. It returns
// nil when nobody is signed in.
func (g *Gateway) Uploads(ctx context.Context, limit int) ([]store.Upload, error) {
	sess := g.Session(ctx)
	if sess == nil {
		return nil, nil
	}
	return g.uploads.ListUploads(ctx, sess.UserID, limit)
}

// History lists the signed-in user's finished study runs, newest first.
func (g *Gateway) History(ctx context.Context, limit int) ([]store.StudySession, error) {
	sess := g.Session(ctx)
	if sess == nil || g.studies == nil {
		return nil, nil
	}
	return g.studies.ListStudySessions(ctx, sess.UserID, limit)
}

// Questions loads the stored questions of one of the signed-in user's
// uploads, with fresh ids.
func (g *Gateway) Questions(ctx context.Context, uploadID int) ([]questiongen.Question, error) {
	sess := g.Session(ctx)
	if sess == nil {
		return nil, nil
	}
	up, err := g.uploads.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if up == nil {
		return nil, fmt.Errorf("upload %d not found", uploadID)
	}
	if up.UserID != sess.UserID {
		return nil, ErrForbidden
	}

	rows, err := g.uploads.UploadQuestions(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	out := make([]questiongen.Question, len(rows))
	for i, r := range rows {
		out[i] = questiongen.Question{
			ID:         uuid.NewString(),
			Text:       r.Text,
			Answer:     r.Answer,
			Options:    r.Options,
			Type:       r.Type,
			Difficulty: r.Difficulty,
		}
	}
	return out, nil
}

func (g *Gateway) fail(step string, uploadID int, err error) Result {
	err = fmt.Errorf("%s: %w", step, err)
	g.logger.Warn().Err(err).Int("upload_id", uploadID).Msg("persistence failed")
	return Result{UploadID: uploadID, Err: err}
}

func toStored(qs []questiongen.Question) []store.QuestionData {
	out := make([]store.QuestionData, len(qs))
	for i, q := range qs {
		out[i] = store.QuestionData{
			Text:       q.Text,
			Answer:     q.Answer,
			Options:    q.Options,
			Type:       q.Type,
			Difficulty: q.Difficulty,
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
