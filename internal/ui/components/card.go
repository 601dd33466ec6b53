package components

import (
	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/ui/theme"
)

// ContentWidth returns the inner width used for screen sections so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded card of content width cw.
func Card(content string, cw int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.FocusedCard
	}
	return style.Width(cw).Render(content)
}

// Button renders an action button.
func Button(label string, selected bool, width int) string {
	if selected {
		return theme.ButtonActive.
			Width(width).
			Align(lipgloss.Center).
			Render("▸ " + label)
	}
	return theme.ButtonInactive.
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}
