// Package study holds the state of the two study modes. Controllers are
// plain values driven by the UI; they do no I/O.
package study

import "github.com/dayne-app/dayne/internal/questiongen"

// Mode is a study mode.
type Mode string

const (
	ModeFlashcards Mode = "flashcards"
	ModeTest       Mode = "test"
)

// Completion is reported once when a study run ends.
type Completion struct {
	Done bool
	// Graded is set for test runs, whose Score is meaningful.
	Graded bool
	Score  int
	Total  int
}

// Question is the unit both controllers iterate over.
type Question = questiongen.Question
