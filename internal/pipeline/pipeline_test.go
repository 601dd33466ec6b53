package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/persist"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/store"
)

var text120 = strings.Repeat("Mitochondria produce most of the cell's energy. ", 3)[:120]

func batch(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"question":"Q%d?","answer":"A","options":["A","B","C","D"]}`, i)
	}
	return `{"questions":[` + strings.Join(parts, ",") + `]}`
}

func newPipeline(mock *llm.MockProvider, gw *persist.Gateway) *Pipeline {
	gen := questiongen.New(mock, questiongen.DefaultConfig(), zerolog.Nop())
	return New(extract.New(), gen, gw, zerolog.Nop())
}

func TestProcessText_ReturnsWhatUpstreamReturned(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(5)})
	p := newPipeline(mock, nil)

	out, err := p.ProcessText(context.Background(), text120, i18n.English, 10)
	require.NoError(t, err)
	assert.Len(t, out.Questions, 5)
	assert.True(t, out.Persisted.Skipped || out.Persisted.UploadID == 0)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "EXACTLY 10")
}

func TestProcessText_Empty(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := newPipeline(mock, nil).ProcessText(context.Background(), " \n\t ", i18n.English, 10)
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Zero(t, mock.CallCount())
}

func TestProcessText_ShortTextNeverReachesNetwork(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(1)})
	_, err := newPipeline(mock, nil).ProcessText(context.Background(), "short", i18n.English, 10)
	assert.ErrorIs(t, err, questiongen.ErrTextTooShort)
	assert.Zero(t, mock.CallCount())
}

func TestProcessText_DefaultCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(1)})
	_, err := newPipeline(mock, nil).ProcessText(context.Background(), text120, i18n.English, 0)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, fmt.Sprintf("EXACTLY %d", DefaultPasteCount))
}

func TestProcessFile_DefaultCountIsFive(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(5)})
	f := extract.File{Name: "notes.txt", Data: []byte(text120)}

	out, err := newPipeline(mock, nil).ProcessFile(context.Background(), f, i18n.English, 0)
	require.NoError(t, err)
	assert.Len(t, out.Questions, 5)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "EXACTLY 5")
}

func TestProcessFile_TooLittleText(t *testing.T) {
	mock := llm.NewMockProvider()
	f := extract.File{Name: "tiny.txt", Data: []byte("   only a few words   ")}

	_, err := newPipeline(mock, nil).ProcessFile(context.Background(), f, i18n.English, 0)
	assert.ErrorIs(t, err, ErrTooLittleText)
	assert.Zero(t, mock.CallCount())
}

func TestProcessFile_BetweenFiftyAndHundredFailsInGenerator(t *testing.T) {
	mock := llm.NewMockProvider()
	f := extract.File{Name: "short.txt", Data: []byte(strings.Repeat("x", 70))}

	_, err := newPipeline(mock, nil).ProcessFile(context.Background(), f, i18n.English, 0)
	assert.ErrorIs(t, err, questiongen.ErrTextTooShort)
	assert.Zero(t, mock.CallCount())
}

func TestProcessFile_Unsupported(t *testing.T) {
	mock := llm.NewMockProvider()
	f := extract.File{Name: "legacy.doc", Data: []byte(text120)}

	_, err := newPipeline(mock, nil).ProcessFile(context.Background(), f, i18n.English, 0)
	assert.ErrorIs(t, err, extract.ErrUnsupportedType)
	assert.Contains(t, err.Error(), ".txt, .pdf, .docx")
}

func TestProcessFile_TooLarge(t *testing.T) {
	f := extract.File{Name: "big.txt", Data: make([]byte, extract.MaxFileSize+1)}
	_, err := newPipeline(llm.NewMockProvider(), nil).ProcessFile(context.Background(), f, i18n.English, 0)
	assert.ErrorIs(t, err, extract.ErrFileTooLarge)
}

type signedIn struct{}

func (signedIn) Session(context.Context) (*auth.Session, error) {
	return &auth.Session{UserID: "user-1"}, nil
}

type downRepo struct{}

var errDown = errors.New("connection refused")

func (downRepo) CreateUpload(context.Context, store.UploadData) (int, error) { return 0, errDown }
func (downRepo) AddQuestions(context.Context, int, []store.QuestionData) error {
	return errDown
}
func (downRepo) MarkProcessed(context.Context, int) error { return errDown }
func (downRepo) ListUploads(context.Context, string, int) ([]store.Upload, error) {
	return nil, errDown
}
func (downRepo) GetUpload(context.Context, int) (*store.Upload, error) { return nil, errDown }
func (downRepo) UploadQuestions(context.Context, int) ([]store.QuestionData, error) {
	return nil, errDown
}

func TestProcessFile_UnreachablePersistenceDoesNotBlock(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(3)})
	gw := persist.New(signedIn{}, downRepo{}, nil, nil, zerolog.Nop())
	f := extract.File{Name: "notes.txt", Data: []byte(text120)}

	out, err := newPipeline(mock, gw).ProcessFile(context.Background(), f, i18n.English, 3)
	require.NoError(t, err)
	assert.Len(t, out.Questions, 3)
	assert.ErrorIs(t, out.Persisted.Err, errDown)
}

func TestProcessFile_SavedWhenSignedIn(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "p.db"))
	require.NoError(t, err)
	defer s.Close()

	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(2)})
	gw := persist.New(signedIn{}, s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	f := extract.File{Name: "notes.txt", MIMEType: extract.MIMEText, Data: []byte(text120)}

	out, err := newPipeline(mock, gw).ProcessFile(context.Background(), f, i18n.Kazakh, 2)
	require.NoError(t, err)
	require.True(t, out.Persisted.Saved())

	up, err := s.UploadRepo().GetUpload(context.Background(), out.Persisted.UploadID)
	require.NoError(t, err)
	assert.True(t, up.Processed)
	assert.Equal(t, 2, up.QuestionCount)
}

func TestProcessFile_GeneratorErrorSkipsPersistence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "not json"})
	gw := persist.New(signedIn{}, downRepo{}, nil, nil, zerolog.Nop())
	f := extract.File{Name: "notes.txt", Data: []byte(text120)}

	_, err := newPipeline(mock, gw).ProcessFile(context.Background(), f, i18n.English, 3)
	assert.ErrorIs(t, err, questiongen.ErrUnparseable)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	for _, in := range []string{path, "'" + path + "'", strings.ReplaceAll(path, " ", `\ `), "  " + path + "\n"} {
		f, err := LoadFile(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "my notes.txt", f.Name)
		assert.Equal(t, extract.MIMEText, f.MIMEType)
		assert.Equal(t, "hello", string(f.Data))
	}
}

func TestLoadFile_ValidatesBeforeReading(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.doc")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, extract.ErrUnsupportedType)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = LoadFile(dir)
	assert.Error(t, err)
}
