package generating

import (
	"fmt"
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/ui/components"
	"github.com/dayne-app/dayne/internal/ui/layout"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

// GeneratingScreen is shown while questions are being generated.
type GeneratingScreen struct {
	source  orchestrator.Source
	lang    i18n.Language
	spinner spinner.Model
	elapsed time.Duration
}

var _ screen.Screen = (*GeneratingScreen)(nil)
var _ screen.KeyHintProvider = (*GeneratingScreen)(nil)

type secondMsg struct{}

func New(src orchestrator.Source, lang i18n.Language) *GeneratingScreen {
	return &GeneratingScreen{
		source: src,
		lang:   lang,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (s *GeneratingScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, second())
}

func second() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return secondMsg{} })
}

func (s *GeneratingScreen) Title() string {
	return i18n.For(s.lang).Processing
}

func (s *GeneratingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: i18n.For(s.lang).Cancel}}
}

func (s *GeneratingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language
		return s, nil

	case secondMsg:
		s.elapsed += time.Second
		return s, second()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, screen.Send(screen.CancelMsg{})
		}
	}
	return s, nil
}

func (s *GeneratingScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)

	what := fmt.Sprintf("%s · %d", t.PasteText, s.source.Count)
	if s.source.IsFile() {
		what = fmt.Sprintf("%s · %d", filepath.Base(s.source.Path), s.source.Count)
	}

	status := s.spinner.View() + " " + theme.Body.Render(t.Processing)
	lines := []string{
		status,
		"",
		theme.Dimmed.Render(what),
		theme.Dimmed.Render(fmt.Sprintf("%ds", int(s.elapsed.Seconds()))),
		"",
		components.Button(t.Cancel, false, cw/2),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return components.Centered(body, width, height)
}
