package flashcards

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/components"
	"github.com/dayne-app/dayne/internal/ui/layout"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

// FlashcardsScreen shows one card at a time. The primary action flips
// the card, then moves to the next one.
type FlashcardsScreen struct {
	deck    *study.Flashcards
	lang    i18n.Language
	started time.Time
	now     func() time.Time
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

func New(questions []study.Question, lang i18n.Language) *FlashcardsScreen {
	return &FlashcardsScreen{
		deck: study.NewFlashcards(questions),
		lang: lang,
		now:  time.Now,
	}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	s.started = s.now()
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return i18n.For(s.lang).Flashcards
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	t := i18n.For(s.lang)
	if s.deck.Empty() {
		return []layout.KeyHint{{Key: "Esc", Description: t.BackToHome}}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: t.ShowAnswer},
		{Key: "←→", Description: t.Navigate},
		{Key: "S", Description: t.ShowAnswer},
		{Key: "Esc", Description: t.BackToHome},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language

	case tea.MouseClickMsg:
		if msg.Mouse().Button == tea.MouseLeft {
			return s, s.advance()
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "space", "right", "l":
			return s, s.advance()
		case "left", "h":
			s.deck.Retreat()
		case "s":
			s.deck.Reveal()
		case "esc":
			return s, screen.Send(screen.ReturnMsg{})
		}
	}
	return s, nil
}

func (s *FlashcardsScreen) advance() tea.Cmd {
	c := s.deck.Advance()
	if !c.Done {
		return nil
	}
	return screen.Send(screen.CompletedMsg{Completion: c, Elapsed: s.now().Sub(s.started)})
}

func (s *FlashcardsScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)

	q, ok := s.deck.Current()
	if !ok {
		body := theme.Subtitle.Width(cw).Render(t.NoQuestions) + "\n\n" +
			components.Button(t.BackToHome, true, cw/2)
		return components.Centered(body, width, height)
	}

	var b strings.Builder
	b.WriteString(components.NewProgressBar(s.deck.Index()+1, s.deck.Len(), cw).View())
	b.WriteString("\n\n")

	face := theme.Label.Render(t.Question) + "\n\n" + theme.Body.Render(q.Text)
	if s.deck.Revealed() {
		face += "\n\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw-6)) +
			"\n\n" + theme.Label.Render(t.Answer) + "\n\n" + theme.Correct.Render(q.Answer)
	}
	b.WriteString(components.Card(face, cw, s.deck.Revealed()))
	b.WriteString("\n\n")

	action := t.ShowAnswer
	if s.deck.Revealed() {
		action = t.NextCard
		if s.deck.IsLast() {
			action = t.Complete
		}
	}
	b.WriteString(components.Button(action, true, cw/2))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(t.CardHint))

	return components.Centered(b.String(), width, height)
}
