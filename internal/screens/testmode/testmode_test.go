package testmode

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

func questions() []study.Question {
	return []study.Question{
		{ID: "1", Text: "2+2?", Answer: "4", Options: []string{"3", "4", "5"}},
		{ID: "2", Text: "Capital of France?", Answer: "Paris", Options: []string{"Paris", "Rome"}},
		{ID: "3", Text: "Largest planet?", Answer: "Jupiter", Options: []string{"Mars", "Jupiter"}},
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func newScreen(qs []study.Question) *TestScreen {
	s := New(qs, i18n.English)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	s.Init()
	return s
}

func press(s *TestScreen, keys ...string) []tea.Msg {
	var out []tea.Msg
	for _, k := range keys {
		_, cmd := s.Update(key(k))
		if cmd != nil {
			out = append(out, cmd())
		}
	}
	return out
}

func TestTestScreen_ScoresTwoOfThree(t *testing.T) {
	s := newScreen(questions())

	// 4 (right), Rome (wrong), Jupiter (right)
	msgs := press(s,
		"2", "enter", "enter",
		"2", "enter", "enter",
		"2", "enter", "enter",
	)

	require.Len(t, msgs, 1)
	done, ok := msgs[0].(screen.CompletedMsg)
	require.True(t, ok)
	assert.True(t, done.Completion.Graded)
	assert.Equal(t, 2, done.Completion.Score)
	assert.Equal(t, 3, done.Completion.Total)
	assert.Equal(t, []string{"4", "Rome", "Jupiter"}, s.test.Given())
}

func TestTestScreen_CursorAndEnterSubmit(t *testing.T) {
	s := newScreen(questions())

	press(s, "down", "j", "down", "up")
	assert.Equal(t, 1, s.cursor)

	press(s, "enter")
	assert.True(t, s.test.Submitted())
	assert.Equal(t, "4", s.test.Selected())
	assert.Contains(t, s.View(80, 30), "Correct!")
}

func TestTestScreen_SelectionLockedAfterSubmit(t *testing.T) {
	s := newScreen(questions())
	press(s, "1", "enter", "2", "down")

	assert.Equal(t, "3", s.test.Selected())
	assert.Equal(t, 0, s.cursor)
	view := s.View(80, 30)
	assert.Contains(t, view, "Incorrect")
	assert.Contains(t, view, "Correct answer: 4")
}

func TestTestScreen_OutOfRangeDigitIgnored(t *testing.T) {
	s := newScreen(questions())
	press(s, "9")
	assert.Empty(t, s.test.Selected())
}

func TestTestScreen_EscReturns(t *testing.T) {
	s := newScreen(questions())
	assert.Equal(t, []tea.Msg{screen.ReturnMsg{}}, press(s, "esc"))
}

func TestTestScreen_EmptyCompletesZeroOfZero(t *testing.T) {
	s := newScreen(nil)
	assert.Contains(t, s.View(80, 30), "No questions available")

	msgs := press(s, "enter")
	require.Len(t, msgs, 1)
	done := msgs[0].(screen.CompletedMsg)
	assert.Equal(t, 0, done.Completion.Score)
	assert.Equal(t, 0, done.Completion.Total)
}

func TestTestScreen_QuestionWithoutOptionsCanBeSkipped(t *testing.T) {
	s := newScreen([]study.Question{
		{ID: "1", Text: "Define osmosis.", Answer: "Diffusion of water", Options: []string{}},
	})

	assert.Empty(t, press(s, "enter"))
	assert.True(t, s.test.Submitted())
	assert.Contains(t, s.View(80, 30), "Diffusion of water")

	msgs := press(s, "enter")
	require.Len(t, msgs, 1)
	done := msgs[0].(screen.CompletedMsg)
	assert.Equal(t, 0, done.Completion.Score)
	assert.Equal(t, 1, done.Completion.Total)
}
