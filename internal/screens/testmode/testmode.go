package testmode

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/components"
	"github.com/dayne-app/dayne/internal/ui/layout"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

// TestScreen runs a graded multiple-choice test.
type TestScreen struct {
	test    *study.Test
	cursor  int
	lang    i18n.Language
	started time.Time
	now     func() time.Time
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

func New(questions []study.Question, lang i18n.Language) *TestScreen {
	return &TestScreen{
		test: study.NewTest(questions),
		lang: lang,
		now:  time.Now,
	}
}

func (s *TestScreen) Init() tea.Cmd {
	s.started = s.now()
	return nil
}

func (s *TestScreen) Title() string {
	return i18n.For(s.lang).Test
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	t := i18n.For(s.lang)
	if s.test.Empty() {
		return []layout.KeyHint{{Key: "Esc", Description: t.BackToHome}}
	}
	action := t.SubmitAnswer
	if s.test.Submitted() {
		action = t.NextQuestion
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: t.Navigate},
		{Key: "1-9", Description: t.Select},
		{Key: "Enter", Description: action},
		{Key: "Esc", Description: t.BackToHome},
	}
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language

	case tea.KeyPressMsg:
		key := msg.String()
		switch key {
		case "up", "k":
			s.move(-1)
		case "down", "j":
			s.move(1)
		case "space":
			s.pick(s.cursor)
		case "enter":
			return s, s.confirm()
		case "esc":
			return s, screen.Send(screen.ReturnMsg{})
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				s.pick(int(key[0] - '1'))
			}
		}
	}
	return s, nil
}

func (s *TestScreen) options() []string {
	q, ok := s.test.Current()
	if !ok {
		return nil
	}
	return q.Options
}

func (s *TestScreen) move(delta int) {
	if s.test.Submitted() {
		return
	}
	list := components.OptionList{Options: s.options(), Cursor: s.cursor}
	list.Move(delta)
	s.cursor = list.Cursor
}

func (s *TestScreen) pick(i int) {
	opts := s.options()
	if i < 0 || i >= len(opts) {
		return
	}
	if s.test.Select(opts[i]) {
		s.cursor = i
	}
}

// confirm submits the selection, or moves on once it was submitted. With
// nothing selected the option under the cursor is taken. A question
// without options is skipped.
func (s *TestScreen) confirm() tea.Cmd {
	if s.test.Empty() {
		return s.finish(s.test.Next())
	}
	if !s.test.Submitted() {
		if len(s.options()) == 0 {
			s.test.Skip()
			return nil
		}
		if s.test.Selected() == "" {
			s.pick(s.cursor)
		}
		s.test.Submit()
		return nil
	}
	c := s.test.Next()
	if !c.Done {
		s.cursor = 0
	}
	return s.finish(c)
}

func (s *TestScreen) finish(c study.Completion) tea.Cmd {
	if !c.Done {
		return nil
	}
	return screen.Send(screen.CompletedMsg{Completion: c, Elapsed: s.now().Sub(s.started)})
}

func (s *TestScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)

	q, ok := s.test.Current()
	if !ok {
		body := theme.Subtitle.Width(cw).Render(t.NoQuestions) + "\n\n" +
			components.Button(t.BackToHome, true, cw/2)
		return components.Centered(body, width, height)
	}

	var b strings.Builder
	b.WriteString(components.NewProgressBar(s.test.Index()+1, s.test.Len(), cw).View())
	b.WriteString("\n")
	b.WriteString(theme.Dimmed.Render(fmt.Sprintf("%s: %d", t.Score, s.test.Score())))
	b.WriteString("\n\n")

	list := components.OptionList{
		Options: q.Options,
		Cursor:  s.cursor,
		Locked:  s.test.Submitted(),
		State:   s.optionState,
	}
	card := theme.Label.Render(t.Question) + "\n\n" + theme.Body.Render(q.Text) + "\n\n" + list.View()
	b.WriteString(components.Card(card, cw, !s.test.Submitted()))
	b.WriteString("\n\n")

	if s.test.Submitted() {
		if s.test.Selected() == q.Answer {
			b.WriteString(theme.Correct.Render(t.Correct))
		} else {
			b.WriteString(theme.Incorrect.Render(t.Incorrect))
			b.WriteString("  ")
			b.WriteString(theme.Dimmed.Render(t.CorrectAnswer + ": " + q.Answer))
		}
		b.WriteString("\n\n")
		action := t.NextQuestion
		if s.test.IsLast() {
			action = t.Complete
		}
		b.WriteString(components.Button(action, true, cw/2))
	} else {
		b.WriteString(components.Button(t.SubmitAnswer, s.test.Selected() != "", cw/2))
	}

	return components.Centered(b.String(), width, height)
}

func (s *TestScreen) optionState(opt string) components.OptionState {
	switch s.test.Classify(opt) {
	case study.Selected:
		return components.OptionChosen
	case study.Correct:
		return components.OptionRight
	case study.WrongPick:
		return components.OptionWrong
	case study.Neutral:
		return components.OptionDim
	}
	return components.OptionPlain
}
