package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/router"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/store"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/components"
	"github.com/dayne-app/dayne/internal/ui/layout"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

// Limit caps how many study runs are listed.
const Limit = 50

// Loader fetches the signed-in user's study runs, newest first.
type Loader func(ctx context.Context, limit int) ([]store.StudySession, error)

type historyLoadedMsg struct {
	sessions []store.StudySession
	err      error
}

// HistoryScreen lists past study runs. Enter repeats the selected run
// when it came from a stored upload.
type HistoryScreen struct {
	load     Loader
	lang     i18n.Language
	sessions []store.StudySession
	selected int
	loaded   bool
	err      error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(load Loader, lang i18n.Language) *HistoryScreen {
	return &HistoryScreen{load: load, lang: lang}
}

func (s *HistoryScreen) Init() tea.Cmd {
	load := s.load
	return func() tea.Msg {
		list, err := load(context.Background(), Limit)
		return historyLoadedMsg{sessions: list, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return i18n.For(s.lang).History
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	t := i18n.For(s.lang)
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.Navigate},
		{Key: "Enter", Description: t.StudyAgain},
		{Key: "Esc", Description: t.Back},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language

	case historyLoadedMsg:
		s.sessions = msg.sessions
		s.err = msg.err
		s.loaded = true
		s.selected = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			return s, s.again()
		}
	}
	return s, nil
}

// again reopens the selected run's upload in the same mode. Runs over
// pasted text have no upload and cannot be repeated.
func (s *HistoryScreen) again() tea.Cmd {
	if s.selected >= len(s.sessions) {
		return nil
	}
	run := s.sessions[s.selected]
	if run.UploadID == nil {
		return nil
	}
	return screen.Send(screen.StudyUploadMsg{UploadID: *run.UploadID, Mode: study.Mode(run.Mode)})
}

func (s *HistoryScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)

	header := theme.Title.Width(cw).Render(t.History)

	var body string
	switch {
	case !s.loaded:
		body = theme.Dimmed.Render(t.Loading)
	case s.err != nil:
		body = theme.Notice.Width(cw).Render(s.err.Error())
	case len(s.sessions) == 0:
		body = theme.Subtitle.Width(cw).Render(t.NoHistory)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Dimmed.Render(s.summary()), "", s.list(height-8))
	}

	return components.Centered(lipgloss.JoinVertical(lipgloss.Left, header, "", body), width, height)
}

// summary reports the run count and the accuracy over graded tests.
func (s *HistoryScreen) summary() string {
	t := i18n.For(s.lang)
	var score, total int
	for _, run := range s.sessions {
		if run.Score != nil {
			score += *run.Score
			total += run.Total
		}
	}
	line := fmt.Sprintf("%s: %d", t.History, len(s.sessions))
	if total > 0 {
		line += fmt.Sprintf(" · %s %.0f%%", t.Score, float64(score)/float64(total)*100)
	}
	return line
}

func (s *HistoryScreen) list(rows int) string {
	t := i18n.For(s.lang)
	if rows < 1 {
		rows = 1
	}
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	end := min(start+rows, len(s.sessions))

	var b strings.Builder
	for i := start; i < end; i++ {
		run := s.sessions[i]

		mode := t.Flashcards
		if study.Mode(run.Mode) == study.ModeTest {
			mode = t.Test
		}
		result := fmt.Sprintf("%d × %s", run.Total, t.Question)
		if run.Score != nil {
			result = fmt.Sprintf("%s %d/%d", t.Score, *run.Score, run.Total)
		}
		duration := fmt.Sprintf("%d:%02d", run.TimeSpentSecs/60, run.TimeSpentSecs%60)

		line := fmt.Sprintf("%s  %-12s %-14s %s",
			run.CompletedAt.Format("Jan 02 15:04"), mode, result, duration)

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
			line = theme.Selected.Render(line)
		}
		b.WriteString(prefix + line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
