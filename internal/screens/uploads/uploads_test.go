package uploads

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/router"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/store"
	"github.com/dayne-app/dayne/internal/study"
)

func loaded(t *testing.T, list []store.Upload, err error) *UploadsScreen {
	t.Helper()
	var gotLimit int
	s := New(func(_ context.Context, limit int) ([]store.Upload, error) {
		gotLimit = limit
		return list, err
	}, i18n.English)

	msg := s.Init()()
	s.Update(msg)
	require.Equal(t, Limit, gotLimit)
	return s
}

func sample() []store.Upload {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []store.Upload{
		{ID: 7, Name: "biology.pdf", QuestionCount: 5, CreatedAt: at},
		{ID: 3, Name: "history.docx", QuestionCount: 5, CreatedAt: at},
	}
}

func keyCmd(s *UploadsScreen, k tea.KeyPressMsg) tea.Msg {
	_, cmd := s.Update(k)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestUploads_ListsNames(t *testing.T) {
	s := loaded(t, sample(), nil)
	view := s.View(90, 30)
	assert.Contains(t, view, "biology.pdf")
	assert.Contains(t, view, "history.docx")
	assert.Contains(t, view, "2026-03-01")
}

func TestUploads_Actions(t *testing.T) {
	s := loaded(t, sample(), nil)

	assert.Equal(t, screen.StudyUploadMsg{UploadID: 7, Mode: study.ModeFlashcards},
		keyCmd(s, tea.KeyPressMsg{Code: 'f', Text: "f"}))

	keyCmd(s, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, screen.StudyUploadMsg{UploadID: 3, Mode: study.ModeTest},
		keyCmd(s, tea.KeyPressMsg{Code: 't', Text: "t"}))

	keyCmd(s, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
}

func TestUploads_EmptyAndError(t *testing.T) {
	s := loaded(t, nil, nil)
	assert.Contains(t, s.View(90, 30), "No uploads yet")
	assert.Nil(t, keyCmd(s, tea.KeyPressMsg{Code: tea.KeyEnter}))

	s = loaded(t, nil, errors.New("database is locked"))
	assert.Contains(t, s.View(90, 30), "database is locked")
}

func TestUploads_EscPops(t *testing.T) {
	s := loaded(t, sample(), nil)
	assert.Equal(t, router.PopScreenMsg{}, keyCmd(s, tea.KeyPressMsg{Code: tea.KeyEscape}))
}
