package entry

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
)

var (
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	ctrlG = tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	ctrlO = tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	ctrlR = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
)

func newScreen(user string) *EntryScreen {
	s := New(i18n.English, user)
	s.Init()
	return s
}

func send(s *EntryScreen, msgs ...tea.Msg) tea.Msg {
	var last tea.Msg
	for _, m := range msgs {
		_, cmd := s.Update(m)
		if cmd == nil {
			continue
		}
		if out := cmd(); out != nil {
			switch out.(type) {
			case screen.GenerateMsg, screen.ShowUploadsMsg, screen.ShowHistoryMsg:
				last = out
			}
		}
	}
	return last
}

func TestEntry_PastedTextDefaultsToTenQuestions(t *testing.T) {
	s := newScreen("")
	got := send(s, tab, tea.PasteMsg{Content: "Photosynthesis converts light."}, ctrlG)

	require.IsType(t, screen.GenerateMsg{}, got)
	src := got.(screen.GenerateMsg).Source
	assert.False(t, src.IsFile())
	assert.Equal(t, "Photosynthesis converts light.", src.Text)
	assert.Equal(t, pipeline.DefaultPasteCount, src.Count)
}

func TestEntry_CountSelector(t *testing.T) {
	s := newScreen("")
	got := send(s,
		tab, tea.PasteMsg{Content: "Some notes"},
		tab, right, right, right, right,
		enter,
	)

	require.IsType(t, screen.GenerateMsg{}, got)
	assert.Equal(t, 50, got.(screen.GenerateMsg).Source.Count)
}

func TestEntry_EmptyTextShowsNotice(t *testing.T) {
	s := newScreen("")
	got := send(s, tab, tea.PasteMsg{Content: "   "}, ctrlG)

	assert.Nil(t, got)
	assert.Equal(t, pipeline.ErrEmptyText.Error(), s.Notice())
}

func TestEntry_PathFieldGeneratesFromFile(t *testing.T) {
	s := newScreen("")
	got := send(s, tea.PasteMsg{Content: "/home/me/notes.docx"}, enter)

	require.IsType(t, screen.GenerateMsg{}, got)
	assert.Equal(t, orchestrator.Source{Path: "/home/me/notes.docx", Count: pipeline.DefaultFileCount},
		got.(screen.GenerateMsg).Source)
}

func TestEntry_EmptyPathIgnored(t *testing.T) {
	s := newScreen("")
	assert.Nil(t, send(s, enter))
}

func TestEntry_UploadsNeedSession(t *testing.T) {
	assert.Nil(t, send(newScreen(""), ctrlO))
	assert.Equal(t, screen.ShowUploadsMsg{}, send(newScreen("amy@example.com"), ctrlO))
}

func TestEntry_HistoryNeedsSession(t *testing.T) {
	assert.Nil(t, send(newScreen(""), ctrlR))
	assert.Equal(t, screen.ShowHistoryMsg{}, send(newScreen("amy@example.com"), ctrlR))
}

func TestEntry_StatusShown(t *testing.T) {
	s := newScreen("amy@example.com")
	s.SetStatus("text too short", &study.Completion{Done: true, Graded: true, Score: 2, Total: 3})

	view := s.View(90, 40)
	assert.Contains(t, view, "text too short")
	assert.Contains(t, view, "Score 2/3")
	assert.Contains(t, view, "amy@example.com")
}

func TestEntry_FocusWraps(t *testing.T) {
	s := newScreen("")
	for i := 0; i < int(numFields); i++ {
		send(s, tab)
	}
	assert.Equal(t, fieldPath, s.focus)

	send(s, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, fieldGenerate, s.focus)
}
