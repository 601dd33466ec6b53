package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured is returned at generation time when no credential is
// available for the selected provider.
var ErrNotConfigured = errors.New("AI service is not configured")

// ErrUpstream carries a non-success HTTP status and the provider's own
// error message, when it sent one.
type ErrUpstream struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ErrUpstream) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

func (e *ErrUpstream) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered with something that
// is not a usable completion.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// UpstreamMessage extracts the most specific human-readable message from a
// provider error.
func UpstreamMessage(err error) string {
	var up *ErrUpstream
	if errors.As(err, &up) && up.Message != "" {
		return up.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// statusError builds the typed error for an HTTP status returned by an SDK.
func statusError(status int, message string, err error) error {
	up := &ErrUpstream{StatusCode: status, Message: message, Err: err}
	if status == 429 {
		return &ErrRateLimit{Err: up}
	}
	return up
}
