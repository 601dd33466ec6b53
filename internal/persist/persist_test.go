package persist

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/blob"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/store"
)

type fixedSession struct {
	s   *auth.Session
	err error
}

func (f fixedSession) Session(context.Context) (*auth.Session, error) { return f.s, f.err }

func signedIn(userID string) fixedSession {
	return fixedSession{s: &auth.Session{UserID: userID}}
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "persist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuestions() []questiongen.Question {
	return []questiongen.Question{
		{ID: "a", Text: "Capital of Kazakhstan?", Answer: "Astana", Options: []string{"Astana", "Almaty"}, Type: questiongen.TypeMultipleChoice},
		{ID: "b", Text: "Largest lake?", Answer: "Balkhash", Options: []string{"Balkhash", "Zaysan"}, Type: questiongen.TypeMultipleChoice},
	}
}

func sampleFile() extract.File {
	return extract.File{Name: "notes.txt", MIMEType: extract.MIMEText, Data: []byte("some notes")}
}

func TestSaveUpload_SignedIn(t *testing.T) {
	s := openStore(t)
	dir := t.TempDir()
	g := New(signedIn("user-1"), s.UploadRepo(), s.StudySessionRepo(), blob.NewLocalStore(dir), zerolog.Nop())
	g.now = func() time.Time { return time.UnixMilli(1700000000000) }

	res := g.SaveUpload(context.Background(), sampleFile(), sampleQuestions())
	require.NoError(t, res.Err)
	require.True(t, res.Saved())
	require.NotZero(t, res.UploadID)

	up, err := s.UploadRepo().GetUpload(context.Background(), res.UploadID)
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.True(t, up.Processed)
	assert.Equal(t, "user-1", up.UserID)
	assert.Equal(t, "notes.txt", up.Name)
	assert.Equal(t, int64(10), up.FileSize)
	assert.Equal(t, "user-1/1700000000000_notes.txt", up.BlobKey)
	assert.Equal(t, 2, up.QuestionCount)

	data, err := os.ReadFile(filepath.Join(dir, "user-1", "1700000000000_notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "some notes", string(data))
}

func TestSaveUpload_SignedOutSkips(t *testing.T) {
	s := openStore(t)
	g := New(fixedSession{}, s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())

	res := g.SaveUpload(context.Background(), sampleFile(), sampleQuestions())
	assert.True(t, res.Skipped)
	assert.NoError(t, res.Err)

	ups, err := s.UploadRepo().ListUploads(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, ups)
}

func TestSaveUpload_BadTokenSkips(t *testing.T) {
	s := openStore(t)
	g := New(fixedSession{err: auth.ErrInvalidToken}, s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())

	res := g.SaveUpload(context.Background(), sampleFile(), sampleQuestions())
	assert.True(t, res.Skipped)
}

func TestNilGatewaySkips(t *testing.T) {
	var g *Gateway
	assert.True(t, g.SaveUpload(context.Background(), sampleFile(), sampleQuestions()).Skipped)
	assert.True(t, g.RecordStudy(context.Background(), StudyRecord{Mode: "test"}).Skipped)
	ups, err := g.Uploads(context.Background(), 10)
	assert.NoError(t, err)
	assert.Nil(t, ups)
}

type failingBlobs struct{}

func (failingBlobs) Put(context.Context, string, io.Reader, int64, string) error {
	return errors.New("bucket unreachable")
}
func (failingBlobs) Location(key string) string { return key }

func TestSaveUpload_BlobFailureStillWritesRecord(t *testing.T) {
	s := openStore(t)
	g := New(signedIn("user-1"), s.UploadRepo(), s.StudySessionRepo(), failingBlobs{}, zerolog.Nop())

	res := g.SaveUpload(context.Background(), sampleFile(), sampleQuestions())
	require.True(t, res.Saved())

	up, err := s.UploadRepo().GetUpload(context.Background(), res.UploadID)
	require.NoError(t, err)
	assert.Empty(t, up.BlobKey)
	assert.True(t, up.Processed)
}

// unreachableRepo fails every call like a database that cannot be reached.
type unreachableRepo struct{}

var errUnreachable = errors.New("dial tcp: connection refused")

func (unreachableRepo) CreateUpload(context.Context, store.UploadData) (int, error) {
	return 0, errUnreachable
}
func (unreachableRepo) AddQuestions(context.Context, int, []store.QuestionData) error {
	return errUnreachable
}
func (unreachableRepo) MarkProcessed(context.Context, int) error { return errUnreachable }
func (unreachableRepo) ListUploads(context.Context, string, int) ([]store.Upload, error) {
	return nil, errUnreachable
}
func (unreachableRepo) GetUpload(context.Context, int) (*store.Upload, error) {
	return nil, errUnreachable
}
func (unreachableRepo) UploadQuestions(context.Context, int) ([]store.QuestionData, error) {
	return nil, errUnreachable
}
func (unreachableRepo) RecordStudySession(context.Context, store.StudySessionData) (int, error) {
	return 0, errUnreachable
}
func (unreachableRepo) ListStudySessions(context.Context, string, int) ([]store.StudySession, error) {
	return nil, errUnreachable
}

func TestSaveUpload_UnreachableReportsError(t *testing.T) {
	g := New(signedIn("user-1"), unreachableRepo{}, unreachableRepo{}, nil, zerolog.Nop())

	res := g.SaveUpload(context.Background(), sampleFile(), sampleQuestions())
	assert.False(t, res.Saved())
	assert.ErrorIs(t, res.Err, errUnreachable)

	rec := g.RecordStudy(context.Background(), StudyRecord{Mode: "flashcards", Total: 2})
	assert.ErrorIs(t, rec.Err, errUnreachable)
}

func TestRecordStudy(t *testing.T) {
	s := openStore(t)
	g := New(signedIn("user-1"), s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())

	score := 2
	res := g.RecordStudy(context.Background(), StudyRecord{
		Mode:    "test",
		Score:   &score,
		Total:   3,
		Elapsed: 95*time.Second + 400*time.Millisecond,
	})
	require.True(t, res.Saved())
	assert.NotZero(t, res.SessionID)

	list, err := s.StudySessionRepo().ListStudySessions(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "test", list[0].Mode)
	assert.Equal(t, 95, list[0].TimeSpentSecs)
	require.NotNil(t, list[0].Score)
	assert.Equal(t, 2, *list[0].Score)
}

func TestQuestions_RoundTripAndOwnership(t *testing.T) {
	s := openStore(t)
	owner := New(signedIn("user-1"), s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	res := owner.SaveUpload(context.Background(), sampleFile(), sampleQuestions())
	require.True(t, res.Saved())

	ups, err := owner.Uploads(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ups, 1)

	qs, err := owner.Questions(context.Background(), res.UploadID)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Capital of Kazakhstan?", qs[0].Text)
	assert.Equal(t, []string{"Astana", "Almaty"}, qs[0].Options)
	assert.NotEqual(t, qs[0].ID, qs[1].ID)

	other := New(signedIn("user-2"), s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	_, err = other.Questions(context.Background(), res.UploadID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestHistory_OnlyOwnRuns(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	mine := New(signedIn("user-1"), s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	theirs := New(signedIn("user-2"), s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())

	score := 4
	require.True(t, mine.RecordStudy(ctx, StudyRecord{Mode: "test", Score: &score, Total: 5, Elapsed: 90 * time.Second}).Saved())
	require.True(t, mine.RecordStudy(ctx, StudyRecord{Mode: "flashcards", Total: 5}).Saved())
	require.True(t, theirs.RecordStudy(ctx, StudyRecord{Mode: "flashcards", Total: 3}).Saved())

	hist, err := mine.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	for _, h := range hist {
		assert.Equal(t, "user-1", h.UserID)
	}

	var nilGateway *Gateway
	hist, err = nilGateway.History(ctx, 10)
	assert.NoError(t, err)
	assert.Nil(t, hist)
}
