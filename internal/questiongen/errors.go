package questiongen

import (
	"errors"
	"fmt"

	"github.com/dayne-app/dayne/internal/llm"
)

var (
	ErrTextTooShort = errors.New("text too short to generate meaningful questions")
	ErrInvalidCount = errors.New("question count must be positive")
	ErrUnparseable  = errors.New("could not parse AI response")
	ErrNoQuestions  = errors.New("no questions generated")
)

// UpstreamError reports a failed call to the AI service. Message carries
// the service's own explanation when one was returned.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "failed to generate questions: AI service error"
	}
	return fmt.Sprintf("failed to generate questions: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamError(err error) *UpstreamError {
	ue := &UpstreamError{Message: llm.UpstreamMessage(err), Err: err}
	var up *llm.ErrUpstream
	if errors.As(err, &up) {
		ue.Status = up.StatusCode
	}
	return ue
}
