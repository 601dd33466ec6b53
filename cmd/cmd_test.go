package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/store"
)

func quizQuestions() []questiongen.Question {
	return []questiongen.Question{
		{ID: "1", Text: "2+2?", Answer: "4", Options: []string{"3", "4", "5"}},
		{ID: "2", Text: "Capital of France?", Answer: "Paris", Options: []string{"Paris", "Rome"}},
		{ID: "3", Text: "Largest planet?", Answer: "Jupiter", Options: []string{"Mars", "Jupiter"}},
	}
}

func TestRunQuiz_Scores(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("2\n2\n2\n")

	err := runQuiz(in, &out, quizQuestions())
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Score: 2/3")
	assert.Contains(t, out.String(), "Answer: Paris")
}

func TestRunQuiz_RepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("x\n9\n2\n1\n2\n")

	assert.NoError(t, runQuiz(in, &out, quizQuestions()))
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number from 1 to 3."))
	assert.Contains(t, out.String(), "Score: 3/3")
}

func TestRunQuiz_InputClosed(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, runQuiz(strings.NewReader("2\n"), &out, quizQuestions()))
	assert.Contains(t, out.String(), "(input closed)")
	assert.Contains(t, out.String(), "Score: 1/3")
}

func TestPrintQuestions_MarksAnswer(t *testing.T) {
	var out bytes.Buffer
	printQuestions(&out, quizQuestions()[:1])
	assert.Contains(t, out.String(), "── Question 1/1 ──")
	assert.Contains(t, out.String(), " * 2) 4")
	assert.Contains(t, out.String(), "   1) 3")
}

func TestSummarize(t *testing.T) {
	four, one := 4, 1
	s := summarize([]store.StudySession{
		{StudySessionData: store.StudySessionData{Mode: "test", Score: &four, Total: 5, TimeSpentSecs: 60}},
		{StudySessionData: store.StudySessionData{Mode: "test", Score: &one, Total: 5, TimeSpentSecs: 30}},
		{StudySessionData: store.StudySessionData{Mode: "flashcards", Total: 10, TimeSpentSecs: 30}},
	})

	assert.Equal(t, 1, s.flashcards)
	assert.Equal(t, 2, s.tests)
	assert.Equal(t, 5, s.gradedScore)
	assert.Equal(t, 10, s.gradedTotal)
	assert.Equal(t, 2*time.Minute, s.elapsed)
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "2.0 KB", humanBytes(2048))
	assert.Equal(t, "1.5 MB", humanBytes(3<<19))
}

func llmEvents() []store.LLMEvent {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []store.LLMEvent{
		{ID: 2, Timestamp: at, LLMRequestEventData: store.LLMRequestEventData{
			Provider: "openai", Model: "gpt-3.5-turbo", Purpose: "questions",
			InputTokens: 900, OutputTokens: 400, LatencyMs: 1200, Success: true,
		}},
		{ID: 1, Timestamp: at, LLMRequestEventData: store.LLMRequestEventData{
			Provider: "openai", Model: "gpt-3.5-turbo", Purpose: "questions",
			LatencyMs: 30, ErrorMessage: "rate limit exceeded",
		}},
	}
}

func TestPrintEvents(t *testing.T) {
	var out bytes.Buffer
	printEvents(&out, llmEvents())
	assert.Contains(t, out.String(), "900/400")
	assert.Contains(t, out.String(), "failed: rate limit exceeded")

	out.Reset()
	printEvents(&out, failedOnly(llmEvents()))
	assert.NotContains(t, out.String(), "900/400")

	out.Reset()
	printEvents(&out, nil)
	assert.Equal(t, "No LLM calls recorded.\n", out.String())
}

func TestPrintEvent_IndentsJSON(t *testing.T) {
	e := llmEvents()[0]
	e.RequestBody = `{"model":"gpt-3.5-turbo"}`
	e.ResponseBody = "not json"

	var out bytes.Buffer
	printEvent(&out, &e)
	assert.Contains(t, out.String(), "{\n  \"model\": \"gpt-3.5-turbo\"\n}")
	assert.Contains(t, out.String(), "not json")
}

func TestPrintUsage_Cost(t *testing.T) {
	var out bytes.Buffer
	printUsage(&out,
		[]store.PurposeUsage{{Purpose: "questions", Calls: 2, Failures: 1, InputTokens: 1_000_000, OutputTokens: 1_000_000}},
		[]store.ModelUsage{
			{Model: "gpt-3.5-turbo", Calls: 1, InputTokens: 1_000_000, OutputTokens: 1_000_000},
			{Model: "homegrown-7b", Calls: 1},
		})
	assert.Contains(t, out.String(), "$2.00")
	assert.Contains(t, out.String(), "total (partial)")
	assert.Contains(t, out.String(), "No pricing for: homegrown-7b")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Қазақ…", truncate("Қазақстан", 6))
}
