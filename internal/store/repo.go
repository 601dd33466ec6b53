package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact purpose match when set
	After   int64  // sequence > After
	Before  int64  // sequence < Before
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// UploadData describes a new upload record. Pointer fields are optional.
type UploadData struct {
	Name     string
	UserID   *string
	FileSize *int64
	FileType *string
	BlobKey  *string
}

// Upload is a stored upload record.
type Upload struct {
	ID            int
	Name          string
	UserID        string
	FileSize      int64
	FileType      string
	BlobKey       string
	Processed     bool
	CreatedAt     time.Time
	QuestionCount int
}

// QuestionData is a question as stored against an upload.
type QuestionData struct {
	Text       string
	Answer     string
	Options    []string
	Type       string
	Difficulty string
}

// UploadRepo stores uploads and their generated questions.
type UploadRepo interface {
	CreateUpload(ctx context.Context, data UploadData) (int, error)
	AddQuestions(ctx context.Context, uploadID int, questions []QuestionData) error
	MarkProcessed(ctx context.Context, uploadID int) error
	ListUploads(ctx context.Context, userID string, limit int) ([]Upload, error)
	GetUpload(ctx context.Context, id int) (*Upload, error)
	UploadQuestions(ctx context.Context, uploadID int) ([]QuestionData, error)
}

// StudySessionData records a finished study run.
type StudySessionData struct {
	UserID        string
	UploadID      *int
	Mode          string
	Score         *int
	Total         int
	TimeSpentSecs int
}

// StudySession is a stored study run.
type StudySession struct {
	ID          int
	CompletedAt time.Time
	StudySessionData
}

// StudySessionRepo stores study history.
type StudySessionRepo interface {
	RecordStudySession(ctx context.Context, data StudySessionData) (int, error)
	ListStudySessions(ctx context.Context, userID string, limit int) ([]StudySession, error)
}
