package uploads

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

// Limit caps how many uploads are listed.
const Limit = 50

// Loader fetches the signed-in user's uploads, newest first.
type Loader func(ctx context.Context, limit int) ([]store.Upload, error)

type loadedMsg struct {
	uploads []store.Upload
	err     error
}

// UploadsScreen lists stored uploads with Flashcards / Test actions.
type UploadsScreen struct {
	load     Loader
	lang     i18n.Language
	uploads  []store.Upload
	selected int
	loading  bool
	err      error
}

var _ screen.Screen = (*UploadsScreen)(nil)
var _ screen.KeyHintProvider = (*UploadsScreen)(nil)

func New(load Loader, lang i18n.Language) *UploadsScreen {
	return &UploadsScreen{load: load, lang: lang, loading: true}
}

func (s *UploadsScreen) Init() tea.Cmd {
	load := s.load
	return func() tea.Msg {
		list, err := load(context.Background(), Limit)
		return loadedMsg{uploads: list, err: err}
	}
}

func (s *UploadsScreen) Title() string {
	return i18n.For(s.lang).YourUploads
}

func (s *UploadsScreen) KeyHints() []layout.KeyHint {
	t := i18n.For(s.lang)
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.Navigate},
		{Key: "F", Description: t.Flashcards},
		{Key: "T", Description: t.Test},
		{Key: "Esc", Description: t.Back},
	}
}

func (s *UploadsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language

	case loadedMsg:
		s.loading = false
		s.uploads = msg.uploads
		s.err = msg.err
		s.selected = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.uploads)-1 {
				s.selected++
			}
		case "enter", "f":
			return s, s.study(study.ModeFlashcards)
		case "t":
			return s, s.study(study.ModeTest)
		case "esc":
			return s, screen.Send(router.PopScreenMsg{})
		}
	}
	return s, nil
}

func (s *UploadsScreen) study(mode study.Mode) tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.uploads) {
		return nil
	}
	return screen.Send(screen.StudyUploadMsg{UploadID: s.uploads[s.selected].ID, Mode: mode})
}

func (s *UploadsScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)

	header := theme.Title.Width(cw).Render(t.YourUploads)

	var body string
	switch {
	case s.loading:
		body = theme.Dimmed.Render(t.Processing)
	case s.err != nil:
		body = theme.Notice.Width(cw).Render(s.err.Error())
	case len(s.uploads) == 0:
		body = theme.Subtitle.Width(cw).Render(t.NoUploads)
	default:
		body = s.list(cw, height-6)
	}

	return components.Centered(lipgloss.JoinVertical(lipgloss.Left, header, "", body), width, height)
}

// list renders the rows around the selection that fit in rows lines.
func (s *UploadsScreen) list(cw, rows int) string {
	if rows < 1 {
		rows = 1
	}
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	end := start + rows
	if end > len(s.uploads) {
		end = len(s.uploads)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		u := s.uploads[i]
		meta := fmt.Sprintf("%d × %s · %s", u.QuestionCount, i18n.For(s.lang).Question, u.CreatedAt.Format("2006-01-02"))
		name := u.Name
		if room := cw - lipgloss.Width(meta) - 6; room > 3 {
			if r := []rune(name); len(r) > room {
				name = string(r[:room-1]) + "…"
			}
		}
		gap := cw - 4 - lipgloss.Width(name) - lipgloss.Width(meta)
		if gap < 1 {
			gap = 1
		}
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
			name = theme.Selected.Render(name)
		}
		b.WriteString(prefix + name + strings.Repeat(" ", gap) + theme.Dimmed.Render(meta))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
