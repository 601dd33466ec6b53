package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/orchestrator"
	"github.com/dayne-app/dayne/internal/study"
	"github.com/dayne-app/dayne/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Messages screens send to the root model. Screens never change views
// themselves; the root model applies the transition to the orchestrator
// and swaps screens.

// GenerateMsg asks for a generation run.
type GenerateMsg struct {
	Source orchestrator.Source
}

// CancelMsg abandons the running generation.
type CancelMsg struct{}

// ChooseModeMsg picks the study mode for freshly generated questions.
type ChooseModeMsg struct {
	Mode study.Mode
}

// StudyUploadMsg studies a stored upload directly.
type StudyUploadMsg struct {
	UploadID int
	Mode     study.Mode
}

// CompletedMsg reports the end of a study run.
type CompletedMsg struct {
	Completion study.Completion
	Elapsed    time.Duration
}

// ShowUploadsMsg opens the list of stored uploads.
type ShowUploadsMsg struct{}

// ShowHistoryMsg opens the list of past study runs.
type ShowHistoryMsg struct{}

// ReturnMsg goes back to the entry screen without a result.
type ReturnMsg struct{}

// LanguageMsg is broadcast to every screen when the UI language changes.
type LanguageMsg struct {
	Language i18n.Language
}

// Send wraps msg in a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
