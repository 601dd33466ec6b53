package flashcards

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/screen"
	"github.com/dayne-app/dayne/internal/study"
)

func cards() []study.Question {
	return []study.Question{
		{ID: "1", Text: "What is Go?", Answer: "A language", Options: []string{"A language", "A game"}},
		{ID: "2", Text: "Who made it?", Answer: "Google", Options: []string{"Google", "IBM"}},
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func newScreen(qs []study.Question) *FlashcardsScreen {
	s := New(qs, i18n.English)
	clock := time.Unix(1700000000, 0)
	s.now = func() time.Time { return clock }
	s.Init()
	clock = clock.Add(90 * time.Second)
	return s
}

func press(t *testing.T, s *FlashcardsScreen, k string) tea.Msg {
	t.Helper()
	_, cmd := s.Update(key(k))
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestFlashcards_PrimaryActionFlipsThenAdvances(t *testing.T) {
	s := newScreen(cards())

	assert.Nil(t, press(t, s, "space"))
	assert.True(t, s.deck.Revealed())
	assert.Contains(t, s.View(80, 30), "A language")

	assert.Nil(t, press(t, s, "enter"))
	assert.Equal(t, 1, s.deck.Index())
	assert.False(t, s.deck.Revealed())
}

func TestFlashcards_CompletesAfterLastCard(t *testing.T) {
	s := newScreen(cards())

	var msgs []tea.Msg
	for _, k := range []string{"l", "right", "enter", "space"} {
		if m := press(t, s, k); m != nil {
			msgs = append(msgs, m)
		}
	}

	require.Len(t, msgs, 1)
	done, ok := msgs[0].(screen.CompletedMsg)
	require.True(t, ok)
	assert.True(t, done.Completion.Done)
	assert.False(t, done.Completion.Graded)
	assert.Equal(t, 2, done.Completion.Total)
	assert.Equal(t, 90*time.Second, done.Elapsed)

	assert.Nil(t, press(t, s, "enter"), "completion reported twice")
}

func TestFlashcards_MouseClickAdvances(t *testing.T) {
	s := newScreen(cards())
	s.Update(tea.MouseClickMsg{Button: tea.MouseLeft})
	assert.True(t, s.deck.Revealed())
}

func TestFlashcards_RevealAndRetreat(t *testing.T) {
	s := newScreen(cards())
	press(t, s, "s")
	press(t, s, "s")
	assert.True(t, s.deck.Revealed())
	assert.Equal(t, 0, s.deck.Index())

	press(t, s, "space")
	press(t, s, "h")
	assert.Equal(t, 0, s.deck.Index())
	assert.False(t, s.deck.Revealed())

	press(t, s, "space")
	press(t, s, "space")
	press(t, s, "left")
	assert.Equal(t, 0, s.deck.Index())
}

func TestFlashcards_EscReturns(t *testing.T) {
	s := newScreen(cards())
	assert.Equal(t, screen.ReturnMsg{}, press(t, s, "esc"))
}

func TestFlashcards_EmptyDeck(t *testing.T) {
	s := newScreen(nil)
	assert.Contains(t, s.View(80, 30), "No questions available")
	assert.Len(t, s.KeyHints(), 1)

	m, ok := press(t, s, "enter").(screen.CompletedMsg)
	require.True(t, ok)
	assert.Equal(t, 0, m.Completion.Total)
}

func TestFlashcards_LanguageSwitch(t *testing.T) {
	s := newScreen(cards())
	s.Update(screen.LanguageMsg{Language: i18n.Kazakh})
	assert.Equal(t, "Флэшкарталар", s.Title())
}
