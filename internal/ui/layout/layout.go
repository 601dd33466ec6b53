package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dayne-app/dayne/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" notice. message
// is the localized headline.
func RenderMinSizeMessage(message string, width, height int) string {
	body := fmt.Sprintf("%s\n\n%d × %d → %d × %d", message, width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(body))
}

// RenderHeader renders the header bar: logo on the left, the screen title
// centred, status on the right. The status is cut short before it would
// overlap the title.
func RenderHeader(logo, title, status string, width int) string {
	innerWidth := max(width-4, 0)

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + logo)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	leftGap := max((innerWidth-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	room := innerWidth - lipgloss.Width(left) - leftGap - lipgloss.Width(center) - 1
	status = clip(status, room)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	rightGap := max(room+1-lipgloss.Width(right), 1)
	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return bar().Width(width).Render(content)
}

// RenderFooter renders the key hints on one line, dropping trailing hints
// that do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "   "
	room := width - 6

	var line string
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		next := part
		if line != "" {
			next = line + sep + part
		}
		if lipgloss.Width(next) > room {
			break
		}
		line = next
	}

	return bar().Width(width).Render("  " + line)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

func bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if lipgloss.Width(s) <= n {
		return s
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
