package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(59, 40))
	assert.True(t, IsTooSmall(100, 19))
	assert.False(t, IsTooSmall(60, 20))
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := RenderMinSizeMessage("Terminal too small", 40, 10)
	assert.Contains(t, out, "Terminal too small")
	assert.Contains(t, out, "40 × 10 → 60 × 20")
}

func TestRenderHeader_ClipsStatus(t *testing.T) {
	status := strings.Repeat("x", 200)
	out := RenderHeader("Dayne", "Flashcards", status, 80)

	assert.Contains(t, out, "Flashcards")
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, status)
}

func TestRenderFooter_DropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Ctrl+L", Description: "Language"},
	}

	wide := RenderFooter(hints, 120)
	assert.Contains(t, wide, "Language")

	narrow := RenderFooter(hints, 40)
	assert.Contains(t, narrow, "Next field")
	assert.NotContains(t, narrow, "Language")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	out := RenderFrame("head", "body", "foot", 20, 10)
	assert.Equal(t, 10, lipgloss.Height(out))
}
