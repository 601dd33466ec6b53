// Package questiongen turns source text into multiple-choice questions.
package questiongen

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Generator produces questions from text.
type Generator interface {
	// Generate returns the questions the AI service produced for in, in the
	// order it returned them.
	Generate(ctx context.Context, in Input) ([]Question, error)
}

// checkInput applies the preconditions shared by every Generator.
func checkInput(in Input, minLen int) error {
	if in.Count <= 0 {
		return ErrInvalidCount
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Text)) < minLen {
		return ErrTextTooShort
	}
	return nil
}
