package modeselect

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/components"
	"github.com/dayne-app/dayne/internal/ui/layout"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

// ModeSelectScreen asks how to study the freshly generated questions.
type ModeSelectScreen struct {
	count int
	lang  i18n.Language
	menu  components.Menu
}

var _ screen.Screen = (*ModeSelectScreen)(nil)
var _ screen.KeyHintProvider = (*ModeSelectScreen)(nil)

func New(count int, lang i18n.Language) *ModeSelectScreen {
	s := &ModeSelectScreen{count: count, lang: lang}
	s.menu = s.buildMenu(0)
	return s
}

func (s *ModeSelectScreen) buildMenu(selected int) components.Menu {
	t := i18n.For(s.lang)
	m := components.NewMenu([]components.MenuItem{
		{Label: t.Flashcards, Action: choose(study.ModeFlashcards)},
		{Label: t.Test, Action: choose(study.ModeTest)},
		{Label: t.BackToHome, Action: func() tea.Cmd { return screen.Send(screen.ReturnMsg{}) }},
	})
	m.Selected = selected
	return m
}

func choose(mode study.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		return screen.Send(screen.ChooseModeMsg{Mode: mode})
	}
}

func (s *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *ModeSelectScreen) Title() string {
	return i18n.For(s.lang).ChooseMethod
}

func (s *ModeSelectScreen) KeyHints() []layout.KeyHint {
	t := i18n.For(s.lang)
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.Navigate},
		{Key: "Enter", Description: t.Select},
		{Key: "Esc", Description: t.BackToHome},
	}
}

func (s *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language
		s.menu = s.buildMenu(s.menu.Selected)
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, screen.Send(screen.ReturnMsg{})
		case "f":
			return s, choose(study.ModeFlashcards)()
		case "t":
			return s, choose(study.ModeTest)()
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModeSelectScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render(t.ChooseMethod)
	sub := theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d × %s", s.count, t.Question))
	menu := s.menu.View(cw / 2)

	body := lipgloss.JoinVertical(lipgloss.Center, title, sub, "", menu)
	return components.Centered(body, width, height)
}
