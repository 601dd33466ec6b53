package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/study"
)

var twoQuestions = []questiongen.Question{
	{ID: "1", Text: "Q1?", Answer: "A"},
	{ID: "2", Text: "Q2?", Answer: "B"},
}

func TestMachine_HappyPath(t *testing.T) {
	m := New()
	require.Equal(t, ViewEntry, m.View())

	tk, err := m.Begin(context.Background(), Source{Text: "some text", Count: 10})
	require.NoError(t, err)
	assert.Equal(t, ViewGenerating, m.View())
	assert.Equal(t, 10, m.Source().Count)

	require.True(t, m.Succeed(tk.Seq, twoQuestions, 0))
	assert.Equal(t, ViewModeSelection, m.View())
	assert.Len(t, m.Questions(), 2)
	assert.Nil(t, m.UploadID())
	assert.Error(t, tk.Ctx.Err(), "ticket context is released after the run")

	require.True(t, m.Choose(study.ModeTest))
	assert.Equal(t, ViewStudying, m.View())
	assert.Equal(t, study.ModeTest, m.Mode())

	require.True(t, m.Complete(study.Completion{Done: true, Graded: true, Score: 1, Total: 2}))
	assert.Equal(t, ViewEntry, m.View())
	assert.Nil(t, m.Questions())
	require.NotNil(t, m.Last())
	assert.Equal(t, 1, m.Last().Score)
}

func TestMachine_BeginRequiresText(t *testing.T) {
	m := New()
	_, err := m.Begin(context.Background(), Source{Text: "  \n "})
	assert.ErrorIs(t, err, pipeline.ErrEmptyText)
	assert.Equal(t, ViewEntry, m.View())

	_, err = m.Begin(context.Background(), Source{Path: "/tmp/notes.txt"})
	assert.NoError(t, err)
}

func TestMachine_BeginOnlyFromEntry(t *testing.T) {
	m := New()
	_, err := m.Begin(context.Background(), Source{Text: "x"})
	require.NoError(t, err)
	_, err = m.Begin(context.Background(), Source{Text: "y"})
	assert.ErrorIs(t, err, ErrBusy)
}

func TestMachine_FailShowsNotice(t *testing.T) {
	m := New()
	tk, _ := m.Begin(context.Background(), Source{Text: "x"})

	require.True(t, m.Fail(tk.Seq, errors.New("no questions generated")))
	assert.Equal(t, ViewEntry, m.View())
	assert.Equal(t, "no questions generated", m.Notice())
	assert.Nil(t, m.Questions())

	_, err := m.Begin(context.Background(), Source{Text: "x"})
	require.NoError(t, err)
	assert.Empty(t, m.Notice(), "a new run clears the notice")
}

func TestMachine_CancelDropsLateResult(t *testing.T) {
	m := New()
	tk, _ := m.Begin(context.Background(), Source{Text: "x"})

	require.True(t, m.Cancel())
	assert.Equal(t, ViewEntry, m.View())
	assert.ErrorIs(t, tk.Ctx.Err(), context.Canceled)

	assert.False(t, m.Succeed(tk.Seq, twoQuestions, 0))
	assert.False(t, m.Fail(tk.Seq, errors.New("late")))
	assert.Equal(t, ViewEntry, m.View())
	assert.Empty(t, m.Notice())
}

func TestMachine_StaleSequenceDropped(t *testing.T) {
	m := New()
	first, _ := m.Begin(context.Background(), Source{Text: "x"})
	m.Cancel()
	second, _ := m.Begin(context.Background(), Source{Text: "y"})

	assert.False(t, m.Succeed(first.Seq, twoQuestions, 0))
	assert.Equal(t, ViewGenerating, m.View())
	assert.True(t, m.Succeed(second.Seq, twoQuestions[:1], 7))
	assert.Len(t, m.Questions(), 1)
	require.NotNil(t, m.UploadID())
	assert.Equal(t, 7, *m.UploadID())
}

func TestMachine_StudyDirect(t *testing.T) {
	m := New()
	id := 3
	require.True(t, m.StudyDirect(twoQuestions, study.ModeFlashcards, &id))
	assert.Equal(t, ViewStudying, m.View())
	assert.Equal(t, study.ModeFlashcards, m.Mode())

	assert.False(t, m.StudyDirect(twoQuestions, study.ModeTest, nil), "only from entry")
}

func TestMachine_Return(t *testing.T) {
	m := New()
	tk, _ := m.Begin(context.Background(), Source{Text: "x"})
	m.Succeed(tk.Seq, twoQuestions, 0)

	require.True(t, m.Return())
	assert.Equal(t, ViewEntry, m.View())
	assert.Nil(t, m.Questions())
	assert.Nil(t, m.Last())

	assert.False(t, m.Return())
}

func TestMachine_InvalidTransitions(t *testing.T) {
	m := New()
	assert.False(t, m.Choose(study.ModeTest))
	assert.False(t, m.Complete(study.Completion{Done: true}))
	assert.False(t, m.Cancel())
	assert.False(t, m.Succeed(1, twoQuestions, 0))
}
