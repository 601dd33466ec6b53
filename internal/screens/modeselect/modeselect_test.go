package modeselect

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
)

func run(s *ModeSelectScreen, msgs ...tea.Msg) tea.Msg {
	var last tea.Msg
	for _, m := range msgs {
		_, cmd := s.Update(m)
		if cmd != nil {
			last = cmd()
		}
	}
	return last
}

func TestModeSelect_EnterChoosesFlashcards(t *testing.T) {
	s := New(5, i18n.English)
	got := run(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, screen.ChooseModeMsg{Mode: study.ModeFlashcards}, got)
}

func TestModeSelect_DownEnterChoosesTest(t *testing.T) {
	s := New(5, i18n.English)
	got := run(s, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, screen.ChooseModeMsg{Mode: study.ModeTest}, got)
}

func TestModeSelect_Shortcuts(t *testing.T) {
	s := New(5, i18n.English)
	assert.Equal(t, screen.ChooseModeMsg{Mode: study.ModeTest}, run(s, tea.KeyPressMsg{Code: 't', Text: "t"}))
	assert.Equal(t, screen.ChooseModeMsg{Mode: study.ModeFlashcards}, run(s, tea.KeyPressMsg{Code: 'f', Text: "f"}))
}

func TestModeSelect_Back(t *testing.T) {
	s := New(5, i18n.English)
	assert.Equal(t, screen.ReturnMsg{}, run(s, tea.KeyPressMsg{Code: tea.KeyEscape}))

	s = New(5, i18n.English)
	got := run(s,
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeyEnter},
	)
	assert.Equal(t, screen.ReturnMsg{}, got)
}

func TestModeSelect_LanguageKeepsSelection(t *testing.T) {
	s := New(5, i18n.English)
	run(s, tea.KeyPressMsg{Code: tea.KeyDown}, screen.LanguageMsg{Language: i18n.Kazakh})

	assert.Equal(t, 1, s.menu.Selected)
	assert.Equal(t, "Тест", s.menu.Items[1].Label)
	assert.Contains(t, s.View(80, 30), "Флэшкарталар")
}
