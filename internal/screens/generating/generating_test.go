package generating

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/screen"
)

func TestGenerating_EscCancels(t *testing.T) {
	s := New(orchestrator.Source{Text: "notes", Count: 10}, i18n.English)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, screen.CancelMsg{}, cmd())
}

func TestGenerating_OtherKeysIgnored(t *testing.T) {
	s := New(orchestrator.Source{Text: "notes", Count: 10}, i18n.English)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestGenerating_ViewNamesSource(t *testing.T) {
	s := New(orchestrator.Source{Path: "/tmp/biology.pdf", Count: 5}, i18n.English)
	s.Update(secondMsg{})
	s.Update(secondMsg{})

	view := s.View(80, 30)
	assert.Contains(t, view, "biology.pdf · 5")
	assert.Contains(t, view, "2s")
	assert.Contains(t, view, "Processing...")
}
