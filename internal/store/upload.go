package store

import (
	"context"
	"fmt"

	"github.com/dayne-app/dayne/ent"
	"github.com/dayne-app/dayne/ent/question"
	"github.com/dayne-app/dayne/ent/upload"
)

// UploadStore implements UploadRepo.
type UploadStore struct {
	client *ent.Client
}

func (r *UploadStore) CreateUpload(ctx context.Context, data UploadData) (int, error) {
	row, err := r.client.Upload.Create().
		SetName(data.Name).
		SetNillableUserID(data.UserID).
		SetNillableFileSize(data.FileSize).
		SetNillableFileType(data.FileType).
		SetNillableBlobKey(data.BlobKey).
		SetProcessed(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create upload: %w", err)
	}
	return row.ID, nil
}

// AddQuestions stores questions in one transaction, in order.
func (r *UploadStore) AddQuestions(ctx context.Context, uploadID int, questions []QuestionData) error {
	if len(questions) == 0 {
		return nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	builders := make([]*ent.QuestionCreate, len(questions))
	for i, q := range questions {
		b := tx.Question.Create().
			SetUploadID(uploadID).
			SetText(q.Text).
			SetAnswer(q.Answer).
			SetOptions(q.Options)
		if q.Type != "" {
			b.SetType(q.Type)
		}
		if q.Difficulty != "" {
			b.SetDifficulty(q.Difficulty)
		}
		builders[i] = b
	}

	if _, err := tx.Question.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert questions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit questions: %w", err)
	}
	return nil
}

func (r *UploadStore) MarkProcessed(ctx context.Context, uploadID int) error {
	if err := r.client.Upload.UpdateOneID(uploadID).SetProcessed(true).Exec(ctx); err != nil {
		return fmt.Errorf("mark upload %d processed: %w", uploadID, err)
	}
	return nil
}

// ListUploads returns a user's uploads, newest first.
func (r *UploadStore) ListUploads(ctx context.Context, userID string, limit int) ([]Upload, error) {
	q := r.client.Upload.Query().
		Where(upload.UserID(userID)).
		WithQuestions().
		Order(ent.Desc(upload.FieldCreatedAt), ent.Desc(upload.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	out := make([]Upload, len(rows))
	for i, row := range rows {
		out[i] = toUpload(row)
	}
	return out, nil
}

// GetUpload returns the upload with id, or nil when it does not exist.
func (r *UploadStore) GetUpload(ctx context.Context, id int) (*Upload, error) {
	row, err := r.client.Upload.Query().
		Where(upload.ID(id)).
		WithQuestions().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get upload %d: %w", id, err)
	}
	u := toUpload(row)
	return &u, nil
}

// UploadQuestions returns the questions stored for an upload in insertion order.
func (r *UploadStore) UploadQuestions(ctx context.Context, uploadID int) ([]QuestionData, error) {
	rows, err := r.client.Question.Query().
		Where(question.UploadID(uploadID)).
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions for upload %d: %w", uploadID, err)
	}
	out := make([]QuestionData, len(rows))
	for i, row := range rows {
		out[i] = QuestionData{
			Text:       row.Text,
			Answer:     row.Answer,
			Options:    row.Options,
			Type:       row.Type,
			Difficulty: row.Difficulty,
		}
	}
	return out, nil
}

func toUpload(row *ent.Upload) Upload {
	u := Upload{
		ID:            row.ID,
		Name:          row.Name,
		Processed:     row.Processed,
		CreatedAt:     row.CreatedAt,
		QuestionCount: len(row.Edges.Questions),
	}
	if row.UserID != nil {
		u.UserID = *row.UserID
	}
	if row.FileSize != nil {
		u.FileSize = *row.FileSize
	}
	if row.FileType != nil {
		u.FileType = *row.FileType
	}
	if row.BlobKey != nil {
		u.BlobKey = *row.BlobKey
	}
	return u
}
