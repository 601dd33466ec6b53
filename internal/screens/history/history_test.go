package history

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

func loaded(t *testing.T, list []store.StudySession, err error) *HistoryScreen {
	t.Helper()
	var gotLimit int
	s := New(func(_ context.Context, limit int) ([]store.StudySession, error) {
		gotLimit = limit
		return list, err
	}, i18n.English)

	s.Update(s.Init()())
	require.Equal(t, Limit, gotLimit)
	return s
}

func intPtr(n int) *int { return &n }

func sample() []store.StudySession {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []store.StudySession{
		{ID: 2, CompletedAt: at, StudySessionData: store.StudySessionData{
			UploadID: intPtr(7), Mode: string(study.ModeTest), Score: intPtr(3), Total: 4, TimeSpentSecs: 75,
		}},
		{ID: 1, CompletedAt: at, StudySessionData: store.StudySessionData{
			Mode: string(study.ModeFlashcards), Total: 10, TimeSpentSecs: 30,
		}},
	}
}

func keyCmd(s *HistoryScreen, k tea.KeyPressMsg) tea.Msg {
	_, cmd := s.Update(k)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestHistory_ListsRuns(t *testing.T) {
	s := loaded(t, sample(), nil)
	view := s.View(100, 30)
	assert.Contains(t, view, "Score 3/4")
	assert.Contains(t, view, "1:15")
	assert.Contains(t, view, "10 × Question")
	assert.Contains(t, view, "75%")
}

func TestHistory_StudyAgain(t *testing.T) {
	s := loaded(t, sample(), nil)

	assert.Equal(t, screen.StudyUploadMsg{UploadID: 7, Mode: study.ModeTest},
		keyCmd(s, tea.KeyPressMsg{Code: tea.KeyEnter}))

	// Pasted-text runs have no upload to reopen.
	keyCmd(s, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, keyCmd(s, tea.KeyPressMsg{Code: tea.KeyEnter}))
}

func TestHistory_SelectionClamped(t *testing.T) {
	s := loaded(t, sample(), nil)
	keyCmd(s, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
	for range 5 {
		keyCmd(s, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 1, s.selected)
}

func TestHistory_EmptyAndError(t *testing.T) {
	assert.Contains(t, loaded(t, nil, nil).View(80, 24), "No study sessions yet.")
	assert.Contains(t, loaded(t, nil, errors.New("db offline")).View(80, 24), "db offline")

	s := loaded(t, nil, nil)
	assert.Nil(t, keyCmd(s, tea.KeyPressMsg{Code: tea.KeyEnter}))
}

func TestHistory_LoadingUntilDelivered(t *testing.T) {
	s := New(func(context.Context, int) ([]store.StudySession, error) { return nil, nil }, i18n.English)
	assert.Contains(t, s.View(80, 24), "Loading...")
}

func TestHistory_EscPops(t *testing.T) {
	s := loaded(t, sample(), nil)
	assert.Equal(t, router.PopScreenMsg{}, keyCmd(s, tea.KeyPressMsg{Code: tea.KeyEscape}))
}

func TestHistory_LanguageSwitch(t *testing.T) {
	s := loaded(t, sample(), nil)
	s.Update(screen.LanguageMsg{Language: i18n.Kazakh})
	assert.Equal(t, i18n.For(i18n.Kazakh).History, s.Title())
}
