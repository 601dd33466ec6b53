package components

import (
	"fmt"
	"strings"

	"github.com/dayne-app/dayne/internal/ui/theme"
)

// OptionState is how one answer option is drawn.
type OptionState int

const (
	OptionPlain OptionState = iota
	OptionChosen
	OptionRight
	OptionWrong
	OptionDim
)

// OptionList renders numbered answer options with a cursor.
type OptionList struct {
	Options []string
	Cursor  int
	// State reports the drawing state of each option.
	State func(opt string) OptionState
	// Locked hides the cursor once the answer is final.
	Locked bool
}

// Move shifts the cursor by delta, clamped to the list.
func (l *OptionList) Move(delta int) {
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor > len(l.Options)-1 {
		l.Cursor = len(l.Options) - 1
	}
}

// Current returns the option under the cursor.
func (l OptionList) Current() (string, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Options) {
		return "", false
	}
	return l.Options[l.Cursor], true
}

// View renders the list.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor && !l.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		state := OptionPlain
		if l.State != nil {
			state = l.State(opt)
		}
		switch state {
		case OptionChosen:
			line = theme.Selected.Render(line)
		case OptionRight:
			line = theme.Correct.Render(line + "  ✓")
		case OptionWrong:
			line = theme.Incorrect.Render(line + "  ✗")
		case OptionDim:
			line = theme.Dimmed.Render(line)
		default:
			if i == l.Cursor && !l.Locked {
				line = theme.Selected.Render(line)
			} else {
				line = theme.Unselected.Render(line)
			}
		}
		b.WriteString(line)
		if i < len(l.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
