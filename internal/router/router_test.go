package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dayne-app/dayne/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	seen    []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestReset(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	s3 := &stubScreen{title: "third"}
	r.Reset(s3)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after reset, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run on reset screen")
	}
}

func TestBroadcastReachesEveryScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Broadcast(screen.LanguageMsg{})

	if len(s1.seen) != 1 || len(s2.seen) != 1 {
		t.Errorf("expected both screens to see the message, got %d and %d", len(s1.seen), len(s2.seen))
	}
}

func TestUpdateOnlyReachesActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Update(screen.ReturnMsg{})

	if len(s1.seen) != 0 {
		t.Errorf("expected bottom screen untouched, got %d messages", len(s1.seen))
	}
	if len(s2.seen) != 1 {
		t.Errorf("expected active screen to see 1 message, got %d", len(s2.seen))
	}
}
