package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/ui/theme"
)

// PathInput is a single-line input for a file path. Terminals paste the
// path when a file is dropped on them, so it doubles as the drop target.
type PathInput struct {
	Model textinput.Model
	// Accepts marks the current value as a usable path.
	Accepts func(path string) bool
}

func NewPathInput(placeholder string, accepts func(string) bool) PathInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "📄 "
	return PathInput{Model: ti, Accepts: accepts}
}

// Update forwards messages to the underlying input.
func (p PathInput) Update(msg tea.Msg) (PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the input with a marker showing whether the value is accepted.
func (p PathInput) View() string {
	view := p.Model.View()
	if p.Model.Value() == "" || p.Accepts == nil {
		return view
	}
	if p.Accepts(p.Model.Value()) {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

func (p PathInput) Value() string { return p.Model.Value() }

func (p *PathInput) Focus() tea.Cmd { return p.Model.Focus() }

func (p *PathInput) Blur() { p.Model.Blur() }

func (p *PathInput) Reset() { p.Model.Reset() }
