package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/router"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	phase2End    = 800 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const bookArt = `   ________   ________
  /        \ /        \
 |  ? ───   |   ✓ ───  |
 |  ? ───   |   ✓ ───  |
 |  ? ───   |   ✓ ───  |
  \________/ \________/`

// sparkle frames cycle around the book
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a short splash, then hands over to the entry
// screen. Any key skips it.
type WelcomeScreen struct {
	next         func() screen.Screen
	lang         i18n.Language
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(lang i18n.Language, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next: next,
		lang: lang,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		w.lang = msg.Language

	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg, tea.MouseClickMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	t := i18n.For(w.lang)
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(bookArt)

	// Phase 2+: sparkles beside the book
	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Primary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "  " + lines[1] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(t.Tagline))
		sections = append(sections, "", theme.Hint.Render(t.PressAnyKey))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
