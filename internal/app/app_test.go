package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/persist"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/router"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/screens/entry"
	"github.com/dayne-app/dayne/internal/screens/flashcards"
	"github.com/dayne-app/dayne/internal/screens/modeselect"
	"github.com/dayne-app/dayne/internal/screens/testmode"
	"github.com/dayne-app/dayne/internal/screens/welcome"
	"github.com/dayne-app/dayne/internal/store"
	"github.com/dayne-app/dayne/internal/study"
)

var notes = strings.Repeat("The Silk Road linked China with the Mediterranean. ", 4)

func batch(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"question":"Q%d?","answer":"A","options":["A","B","C","D"]}`, i)
	}
	return `{"questions":[` + strings.Join(parts, ",") + `]}`
}

type session struct{ s *auth.Session }

func (f session) Session(context.Context) (*auth.Session, error) { return f.s, nil }

func newModel(t *testing.T, mock *llm.MockProvider, gw *persist.Gateway) AppModel {
	t.Helper()
	gen := questiongen.New(mock, questiongen.DefaultConfig(), zerolog.Nop())
	p := pipeline.New(extract.New(), gen, gw, zerolog.Nop())
	m := newAppModel(context.Background(), Deps{
		Pipeline: p,
		Gateway:  gw,
		Language: i18n.English,
		Logger:   zerolog.Nop(),
	})
	return update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(m AppModel, msg tea.Msg) AppModel {
	next, _ := m.Update(msg)
	return next.(AppModel)
}

// await runs cmd, following batches, until a message of type T arrives.
func await[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	ch := make(chan tea.Msg, 16)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if b, ok := msg.(tea.BatchMsg); ok {
				for _, c := range b {
					run(c)
				}
				return
			}
			ch <- msg
		}()
	}
	run(cmd)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-ch:
			if v, ok := msg.(T); ok {
				return v
			}
		case <-timeout:
			var zero T
			t.Fatalf("no %T message", zero)
			return zero
		}
	}
}

func TestApp_TextToFlashcardsAndBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(3)})
	m := newModel(t, mock, nil)

	next, cmd := m.Update(screen.GenerateMsg{Source: orchestrator.Source{Text: notes, Count: 10}})
	m = next.(AppModel)
	assert.Equal(t, orchestrator.ViewGenerating, m.machine.View())

	m = update(m, await[generatedMsg](t, cmd))
	assert.Equal(t, orchestrator.ViewModeSelection, m.machine.View())
	assert.IsType(t, &modeselect.ModeSelectScreen{}, m.router.Active())
	assert.Len(t, m.machine.Questions(), 3)

	m = update(m, screen.ChooseModeMsg{Mode: study.ModeFlashcards})
	assert.Equal(t, orchestrator.ViewStudying, m.machine.View())
	assert.IsType(t, &flashcards.FlashcardsScreen{}, m.router.Active())

	m = update(m, screen.CompletedMsg{Completion: study.Completion{Done: true, Total: 3}})
	assert.Equal(t, orchestrator.ViewEntry, m.machine.View())
	assert.IsType(t, &entry.EntryScreen{}, m.router.Active())
	require.NotNil(t, m.machine.Last())
	assert.Empty(t, m.machine.Questions())
	assert.Contains(t, m.frame(), "Complete! 3")
}

func TestApp_FailureShowsNotice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "I cannot help with that"})
	m := newModel(t, mock, nil)

	next, cmd := m.Update(screen.GenerateMsg{Source: orchestrator.Source{Text: notes, Count: 10}})
	m = update(next.(AppModel), await[generatedMsg](t, cmd))

	assert.Equal(t, orchestrator.ViewEntry, m.machine.View())
	assert.Contains(t, m.machine.Notice(), questiongen.ErrUnparseable.Error())
	assert.Equal(t, m.machine.Notice(), m.entry.Notice())
}

func TestApp_EmptyTextRejectedBeforeGenerating(t *testing.T) {
	mock := llm.NewMockProvider()
	m := newModel(t, mock, nil)

	m = update(m, screen.GenerateMsg{Source: orchestrator.Source{Text: "  ", Count: 10}})
	assert.Equal(t, orchestrator.ViewEntry, m.machine.View())
	assert.Equal(t, pipeline.ErrEmptyText.Error(), m.machine.Notice())
	assert.Zero(t, mock.CallCount())
}

func TestApp_CancelDropsLateResult(t *testing.T) {
	m := newModel(t, llm.NewMockProvider(), nil)

	m = update(m, screen.GenerateMsg{Source: orchestrator.Source{Text: notes, Count: 10}})
	m = update(m, screen.CancelMsg{})
	assert.Equal(t, orchestrator.ViewEntry, m.machine.View())

	late := generatedMsg{seq: 1, outcome: pipeline.Outcome{Questions: []questiongen.Question{{ID: "x"}}}}
	m = update(m, late)
	assert.Equal(t, orchestrator.ViewEntry, m.machine.View())
	assert.Empty(t, m.machine.Questions())
}

func TestApp_SplashHandsOverToEntry(t *testing.T) {
	gen := questiongen.New(llm.NewMockProvider(), questiongen.DefaultConfig(), zerolog.Nop())
	m := newAppModel(context.Background(), Deps{
		Pipeline: pipeline.New(extract.New(), gen, nil, zerolog.Nop()),
		Language: i18n.English,
		Logger:   zerolog.Nop(),
		Splash:   true,
	})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	next, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	m = update(next.(AppModel), await[router.ReplaceScreenMsg](t, cmd))
	assert.IsType(t, &entry.EntryScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_LanguageToggle(t *testing.T) {
	m := newModel(t, llm.NewMockProvider(), nil)
	m = update(m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})

	assert.Equal(t, i18n.Kazakh, m.lang)
	assert.Contains(t, m.frame(), "Оқу")

	m = update(m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	assert.Equal(t, i18n.English, m.lang)
}

func TestApp_StoredUploadStudiedAndRecorded(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	id, err := s.UploadRepo().CreateUpload(ctx, store.UploadData{Name: "notes.txt", UserID: ptr("user-1")})
	require.NoError(t, err)
	require.NoError(t, s.UploadRepo().AddQuestions(ctx, id, []store.QuestionData{
		{Text: "2+2?", Answer: "4", Options: []string{"3", "4"}},
	}))

	gw := persist.New(session{&auth.Session{UserID: "user-1", Email: "amy@example.com"}},
		s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	m := newModel(t, llm.NewMockProvider(), gw)
	assert.Equal(t, "amy@example.com", m.user)

	_, cmd := m.Update(screen.StudyUploadMsg{UploadID: id, Mode: study.ModeTest})
	m = update(m, await[storedQuestionsMsg](t, cmd))

	assert.Equal(t, orchestrator.ViewStudying, m.machine.View())
	assert.IsType(t, &testmode.TestScreen{}, m.router.Active())
	require.NotNil(t, m.machine.UploadID())
	assert.Equal(t, id, *m.machine.UploadID())

	next, cmd := m.Update(screen.CompletedMsg{
		Completion: study.Completion{Done: true, Graded: true, Score: 1, Total: 1},
		Elapsed:    42 * time.Second,
	})
	m = next.(AppModel)
	rec := await[recordedMsg](t, cmd)
	require.NoError(t, rec.result.Err)

	hist, err := s.StudySessionRepo().ListStudySessions(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "test", hist[0].Mode)
	require.NotNil(t, hist[0].Score)
	assert.Equal(t, 1, *hist[0].Score)
	assert.Equal(t, 42, hist[0].TimeSpentSecs)
}

func TestApp_StoredUploadOfAnotherUser(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	id, err := s.UploadRepo().CreateUpload(context.Background(), store.UploadData{Name: "x.txt", UserID: ptr("someone-else")})
	require.NoError(t, err)

	gw := persist.New(session{&auth.Session{UserID: "user-1"}}, s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	m := newModel(t, llm.NewMockProvider(), gw)

	_, cmd := m.Update(screen.StudyUploadMsg{UploadID: id, Mode: study.ModeFlashcards})
	m = update(m, await[storedQuestionsMsg](t, cmd))

	assert.Equal(t, orchestrator.ViewEntry, m.machine.View())
	assert.Equal(t, persist.ErrForbidden.Error(), m.machine.Notice())
}

func TestApp_StartUploadLoadsOnInit(t *testing.T) {
	gw := persist.New(session{&auth.Session{UserID: "user-1"}}, failingUploads{}, nil, nil, zerolog.Nop())
	m := newAppModel(context.Background(), Deps{
		Pipeline:    pipeline.New(extract.New(), questiongen.New(llm.NewMockProvider(), questiongen.DefaultConfig(), zerolog.Nop()), gw, zerolog.Nop()),
		Gateway:     gw,
		Language:    i18n.English,
		Logger:      zerolog.Nop(),
		StartUpload: 9,
		StartMode:   study.ModeTest,
	})

	got := await[storedQuestionsMsg](t, m.Init())
	assert.Equal(t, 9, got.uploadID)
	assert.Equal(t, study.ModeTest, got.mode)
	assert.Error(t, got.err)
}

type failingUploads struct{ store.UploadRepo }

func (failingUploads) GetUpload(context.Context, int) (*store.Upload, error) {
	return nil, errors.New("database is locked")
}

func ptr[T any](v T) *T { return &v }
