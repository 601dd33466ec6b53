package questiongen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/response"
)

// QuestionsPath is the proxy route that generates questions from text.
const QuestionsPath = "/api/v1/questions"

// TextRequest is the body accepted by the proxy's text endpoint.
type TextRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// RemoteError is an error reported by the proxy. It unwraps to the
// matching local sentinel so callers handle proxy and local failures alike.
type RemoteError struct {
	Status  int
	Code    response.ErrCode
	Message string
	err     error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return response.GetMessage(e.Code)
}

func (e *RemoteError) Unwrap() error { return e.err }

// RemoteGenerator implements Generator by calling a dayne proxy, which
// holds the AI credential.
type RemoteGenerator struct {
	baseURL string
	token   string
	client  *http.Client
	minLen  int
}

// RemoteOption configures a RemoteGenerator.
type RemoteOption func(*RemoteGenerator)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *RemoteGenerator) { r.client = c }
}

// WithBearerToken sends token as the session credential.
func WithBearerToken(token string) RemoteOption {
	return func(r *RemoteGenerator) { r.token = token }
}

// NewRemote creates a RemoteGenerator for the proxy at baseURL.
func NewRemote(baseURL string, opts ...RemoteOption) *RemoteGenerator {
	r := &RemoteGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 90 * time.Second},
		minLen:  DefaultConfig().MinTextLength,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *RemoteGenerator) Generate(ctx context.Context, in Input) ([]Question, error) {
	if err := checkInput(in, r.minLen); err != nil {
		return nil, err
	}

	body, err := json.Marshal(TextRequest{
		Text:     in.Text,
		Language: in.Language.String(),
		Count:    in.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+QuestionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UpstreamError{Message: "proxy unreachable", Err: &llm.ErrProviderUnavailable{Err: err}}
	}
	defer resp.Body.Close()

	var env remoteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("proxy returned %s", resp.Status),
			Err:     err,
		}
	}
	if env.Error != nil {
		return nil, remoteError(resp.StatusCode, env.Error)
	}
	if resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("proxy returned %s", resp.Status)}
	}
	if env.Data == nil || len(env.Data.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return env.Data.Questions, nil
}

// QuestionsData is the payload of a successful proxy response.
type QuestionsData struct {
	Questions []Question `json:"questions"`
	// UploadID is set when the proxy saved the upload for the caller.
	UploadID int `json:"upload_id,omitempty"`
}

type remoteEnvelope struct {
	Data  *QuestionsData      `json:"data"`
	Error *response.ErrorBody `json:"error"`
}

func remoteError(status int, body *response.ErrorBody) error {
	re := &RemoteError{Status: status, Code: body.Code, Message: body.Message}
	switch body.Code {
	case response.ErrTextTooShort:
		re.err = ErrTextTooShort
	case response.ErrValidation:
		re.err = ErrInvalidCount
	case response.ErrUnparseable:
		re.err = ErrUnparseable
	case response.ErrNoQuestions:
		re.err = ErrNoQuestions
	case response.ErrNotConfigured:
		re.err = llm.ErrNotConfigured
	case response.ErrUpstream:
		re.err = &UpstreamError{Status: status, Message: strings.TrimPrefix(body.Message, "failed to generate questions: ")}
	default:
		re.err = errors.New(string(body.Code))
	}
	return re
}
