package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/ui/theme"
)

// ProgressBar shows how far through a deck the user is.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// Fraction returns Current/Total in [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current) / float64(p.Total)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// View renders the bar followed by "current / total".
func (p ProgressBar) View() string {
	counter := fmt.Sprintf("  %d / %d", p.Current, p.Total)
	barWidth := p.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		theme.Dimmed.Render(counter)
}
