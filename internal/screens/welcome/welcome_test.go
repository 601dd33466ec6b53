package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/router"
	"github.com/dayne-app/dayne/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "entry" }
func (s *stubScreen) Title() string                           { return "Entry" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(i18n.English, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), "notes into questions") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 3)
	if w.elapsed != 300*time.Millisecond {
		t.Errorf("expected elapsed 300ms, got %v", w.elapsed)
	}

	sendTicks(w, 5)
	if !strings.Contains(w.View(80, 24), "notes into questions") {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestKeypressSkipsSplash(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestAutoTransitionAfterAnimation(t *testing.T) {
	w, callCount := newTestWelcome()

	cmd := sendTicks(w, int(totalDur/tickInterval))
	if cmd == nil {
		t.Fatal("expected a transition command when the animation ends")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}

	if cmd := sendTicks(w, 3); cmd != nil {
		t.Error("ticks after the transition should stop")
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestLanguageSwitch(t *testing.T) {
	w, _ := newTestWelcome()
	w.Update(screen.LanguageMsg{Language: i18n.Kazakh})
	sendTicks(w, 10)
	if !strings.Contains(w.View(80, 24), i18n.For(i18n.Kazakh).Tagline) {
		t.Error("expected Kazakh tagline")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
