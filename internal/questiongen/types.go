package questiongen

import "github.com/dayne-app/dayne/internal/i18n"

// TypeMultipleChoice is the only question type produced.
const TypeMultipleChoice = "multiple_choice"

// Question is a generated study question. It is not modified after
// generation.
type Question struct {
	// ID is assigned locally and is unique within a batch.
	ID string `json:"id"`

	Text   string `json:"question"`
	Answer string `json:"answer"`

	// Options are kept exactly as the model returned them, even when Answer
	// is not among them.
	Options []string `json:"options"`

	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// Input is a generation request.
type Input struct {
	Text     string
	Language i18n.Language
	Count    int
}
