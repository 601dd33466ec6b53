package entry

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/components"
	"github.com/dayne-app/dayne/internal/ui/layout"
	"github.com/dayne-app/dayne/internal/ui/theme"
)

var chip = lipgloss.NewStyle().
	Foreground(theme.BgDark).
	Background(theme.Accent).
	Bold(true)

type field int

const (
	fieldPath field = iota
	fieldText
	fieldCount
	fieldGenerate
	numFields
)

// EntryScreen is the home screen: a path field for files and a text
// area with a question count selector for pasted text.
type EntryScreen struct {
	lang   i18n.Language
	user   string
	notice string
	last   *study.Completion

	path  components.PathInput
	text  textarea.Model
	count int // index into pipeline.PasteCounts
	focus field
}

var _ screen.Screen = (*EntryScreen)(nil)
var _ screen.KeyHintProvider = (*EntryScreen)(nil)

// New creates the entry screen. user is the signed-in e-mail or user id;
// empty when no session is available.
func New(lang i18n.Language, user string) *EntryScreen {
	t := i18n.For(lang)

	ta := textarea.New()
	ta.Placeholder = t.PastePlaceholder
	ta.ShowLineNumbers = false
	ta.SetHeight(6)

	return &EntryScreen{
		lang: lang,
		user: user,
		path: components.NewPathInput(t.DragDrop, extract.Accepts),
		text: ta,
	}
}

// SetStatus updates the notice and the last study result shown above the
// inputs.
func (s *EntryScreen) SetStatus(notice string, last *study.Completion) {
	s.notice = notice
	s.last = last
}

func (s *EntryScreen) Notice() string { return s.notice }

func (s *EntryScreen) Init() tea.Cmd {
	return s.setFocus(s.focus)
}

func (s *EntryScreen) Title() string {
	return i18n.For(s.lang).UploadFile + " / " + i18n.For(s.lang).PasteText
}

func (s *EntryScreen) KeyHints() []layout.KeyHint {
	t := i18n.For(s.lang)
	hints := []layout.KeyHint{
		{Key: "Tab", Description: t.NextField},
		{Key: "Ctrl+G", Description: t.Generate},
	}
	if s.user != "" {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+O", Description: t.YourUploads},
			layout.KeyHint{Key: "Ctrl+R", Description: t.History},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: t.Language},
		layout.KeyHint{Key: "Ctrl+C", Description: t.Quit},
	)
}

func (s *EntryScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.path.Blur()
	s.text.Blur()
	switch f {
	case fieldPath:
		return s.path.Focus()
	case fieldText:
		return s.text.Focus()
	}
	return nil
}

func (s *EntryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageMsg:
		s.lang = msg.Language
		t := i18n.For(s.lang)
		s.text.Placeholder = t.PastePlaceholder
		s.path.Model.Placeholder = t.DragDrop
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			return s, s.setFocus((s.focus + 1) % numFields)
		case "shift+tab":
			return s, s.setFocus((s.focus + numFields - 1) % numFields)
		case "ctrl+g":
			return s, s.generateText()
		case "ctrl+o":
			if s.user != "" {
				return s, screen.Send(screen.ShowUploadsMsg{})
			}
			return s, nil
		case "ctrl+r":
			if s.user != "" {
				return s, screen.Send(screen.ShowHistoryMsg{})
			}
			return s, nil
		}
		return s.handleFieldKey(msg)
	}

	return s.forward(msg)
}

func (s *EntryScreen) handleFieldKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.focus {
	case fieldPath:
		if msg.String() == "enter" {
			return s, s.generateFile()
		}
	case fieldCount:
		switch msg.String() {
		case "left", "h":
			if s.count > 0 {
				s.count--
			}
		case "right", "l":
			if s.count < len(pipeline.PasteCounts)-1 {
				s.count++
			}
		case "enter":
			return s, s.generateText()
		}
		return s, nil
	case fieldGenerate:
		if msg.String() == "enter" || msg.String() == "space" {
			return s, s.generateText()
		}
		return s, nil
	}
	return s.forward(msg)
}

func (s *EntryScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldPath:
		s.path, cmd = s.path.Update(msg)
	case fieldText:
		s.text, cmd = s.text.Update(msg)
	}
	return s, cmd
}

// Count returns the selected question count for pasted text.
func (s *EntryScreen) Count() int {
	return pipeline.PasteCounts[s.count]
}

func (s *EntryScreen) generateText() tea.Cmd {
	if strings.TrimSpace(s.text.Value()) == "" {
		s.notice = pipeline.ErrEmptyText.Error()
		return nil
	}
	return screen.Send(screen.GenerateMsg{Source: orchestrator.Source{
		Text:  s.text.Value(),
		Count: s.Count(),
	}})
}

func (s *EntryScreen) generateFile() tea.Cmd {
	path := strings.TrimSpace(s.path.Value())
	if path == "" {
		return nil
	}
	return screen.Send(screen.GenerateMsg{Source: orchestrator.Source{
		Path:  path,
		Count: pipeline.DefaultFileCount,
	}})
}

func (s *EntryScreen) View(width, height int) string {
	t := i18n.For(s.lang)
	cw := components.ContentWidth(width)
	s.path.Model.SetWidth(cw - 12)
	s.text.SetWidth(cw - 6)
	if layout.IsCompactHeight(height) {
		s.text.SetHeight(3)
	} else {
		s.text.SetHeight(6)
	}

	var sections []string

	if s.user != "" {
		sections = append(sections, theme.Dimmed.Render(t.SignedInAs+": "+s.user))
	} else {
		sections = append(sections, theme.Hint.Render(t.SignInPrompt))
	}

	if s.notice != "" {
		sections = append(sections, theme.Notice.Width(cw).Render(s.notice))
	}
	if s.last != nil {
		sections = append(sections, theme.Label.Render(t.LastResult+": ")+theme.Body.Render(s.describeLast()))
	}

	fileCard := theme.Label.Render(t.UploadFile) + "\n" +
		theme.Hint.Render(t.DragDrop) + "\n\n" +
		s.path.View()
	sections = append(sections, components.Card(fileCard, cw, s.focus == fieldPath))

	textCard := theme.Label.Render(t.PasteText) + "\n\n" +
		s.text.View() + "\n\n" +
		s.countView() + "\n\n" +
		components.Button(t.Generate, s.focus == fieldGenerate, cw/2)
	sections = append(sections, components.Card(textCard, cw, s.focus == fieldText || s.focus == fieldCount || s.focus == fieldGenerate))

	if s.user != "" {
		sections = append(sections, theme.Hint.Render("Ctrl+O  "+t.YourUploads+"   Ctrl+R  "+t.History))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return components.Centered(body, width, height)
}

func (s *EntryScreen) countView() string {
	t := i18n.For(s.lang)
	parts := make([]string, len(pipeline.PasteCounts))
	for i, n := range pipeline.PasteCounts {
		label := fmt.Sprintf(" %d ", n)
		switch {
		case i == s.count && s.focus == fieldCount:
			parts[i] = chip.Render(label)
		case i == s.count:
			parts[i] = theme.Selected.Render(label)
		default:
			parts[i] = theme.Dimmed.Render(label)
		}
	}
	return theme.Label.Render(t.QuestionCount+": ") + strings.Join(parts, " ")
}

func (s *EntryScreen) describeLast() string {
	t := i18n.For(s.lang)
	if s.last.Graded {
		return fmt.Sprintf("%s %d/%d", t.Score, s.last.Score, s.last.Total)
	}
	return fmt.Sprintf("%s %d %s", t.Complete, s.last.Total, t.Flashcards)
}
