package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/auth"
	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/persist"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/response"
	"github.com/dayne-app/dayne/internal/store"
)

const testKey = "test-signing-key"

var sourceText = strings.Repeat("The Kazakh steppe is one of the largest dry grasslands. ", 3)

func init() {
	gin.SetMode(gin.TestMode)
}

func batch(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"question":"Q%d?","answer":"A","options":["A","B","C","D"]}`, i)
	}
	return `{"questions":[` + strings.Join(parts, ",") + `]}`
}

type envelope struct {
	Data     *questiongen.QuestionsData `json:"data"`
	Error    *response.ErrorBody        `json:"error"`
	Metadata response.Metadata          `json:"metadata"`
}

func newServer(t *testing.T, mock *llm.MockProvider, gw *persist.Gateway) *Server {
	t.Helper()
	gen := questiongen.New(mock, questiongen.DefaultConfig(), zerolog.Nop())
	p := pipeline.New(extract.New(), gen, gw, zerolog.Nop())
	return New(p, auth.NewVerifier(testKey), Config{}, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func jsonRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func fileRequest(t *testing.T, name string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealthz(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(), nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGenerateFromText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(5)})
	srv := newServer(t, mock, nil)

	req := jsonRequest(t, map[string]any{"text": sourceText, "language": "kz", "count": 10})
	req.Header.Set("X-Request-ID", "req-123")
	w, env := do(t, srv.Router(), req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Data)
	assert.Len(t, env.Data.Questions, 5)
	assert.Nil(t, env.Error)
	assert.Equal(t, "req-123", env.Metadata.RequestID)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "ДӘЛМЕ-ДӘЛ 10")
}

func TestGenerateFromText_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]any
		mock   llm.MockResponse
		status int
		code   response.ErrCode
	}{
		{"empty", map[string]any{"text": "   "}, llm.MockResponse{}, http.StatusBadRequest, response.ErrEmptyText},
		{"short", map[string]any{"text": "too short"}, llm.MockResponse{}, http.StatusUnprocessableEntity, response.ErrTextTooShort},
		{"bad count", map[string]any{"text": sourceText, "count": -1}, llm.MockResponse{}, http.StatusBadRequest, response.ErrValidation},
		{"unparseable", map[string]any{"text": sourceText}, llm.MockResponse{Content: "nope"}, http.StatusBadGateway, response.ErrUnparseable},
		{"no questions", map[string]any{"text": sourceText}, llm.MockResponse{Content: `{"questions":[]}`}, http.StatusBadGateway, response.ErrNoQuestions},
		{"upstream", map[string]any{"text": sourceText}, llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 500, Message: "server overloaded"}}, http.StatusBadGateway, response.ErrUpstream},
		{"not configured", map[string]any{"text": sourceText}, llm.MockResponse{Err: llm.ErrNotConfigured}, http.StatusServiceUnavailable, response.ErrNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, llm.NewMockProvider(tt.mock), nil)
			w, env := do(t, srv.Router(), jsonRequest(t, tt.body))
			assert.Equal(t, tt.status, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestGenerateFromText_UpstreamMessageForwarded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 401, Message: "Incorrect API key provided"}})
	srv := newServer(t, mock, nil)
	_, env := do(t, srv.Router(), jsonRequest(t, map[string]any{"text": sourceText}))
	require.NotNil(t, env.Error)
	assert.Equal(t, "failed to generate questions: Incorrect API key provided", env.Error.Message)
}

func TestGenerateFromText_MalformedJSON(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w, env := do(t, srv.Router(), req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrValidation, env.Error.Code)
}

func TestGenerateFromFile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch(5)})
	srv := newServer(t, mock, nil)

	w, env := do(t, srv.Router(), fileRequest(t, "notes.txt", []byte(sourceText), nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, env.Data.Questions, 5)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "EXACTLY 5")
}

func TestGenerateFromFile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		data   []byte
		fields map[string]string
		status int
		code   response.ErrCode
	}{
		{"doc", "old.doc", []byte(sourceText), nil, http.StatusUnsupportedMediaType, response.ErrUnsupportedFile},
		{"too little", "tiny.txt", []byte("a few words"), nil, http.StatusUnprocessableEntity, response.ErrTooLittle},
		{"corrupt docx", "broken.docx", []byte("not a zip"), nil, http.StatusUnprocessableEntity, response.ErrExtraction},
		{"bad count", "notes.txt", []byte(sourceText), map[string]string{"count": "many"}, http.StatusBadRequest, response.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, llm.NewMockProvider(), nil)
			w, env := do(t, srv.Router(), fileRequest(t, tt.file, tt.data, tt.fields))
			assert.Equal(t, tt.status, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestGenerateFromFile_MissingFile(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions/file", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w, env := do(t, srv.Router(), req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrFileRequired, env.Error.Code)
}

func TestGenerateFromFile_SavedForSignedInCaller(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "srv.db"))
	require.NoError(t, err)
	defer s.Close()

	gw := persist.New(auth.ContextSource{}, s.UploadRepo(), s.StudySessionRepo(), nil, zerolog.Nop())
	srv := newServer(t, llm.NewMockProvider(llm.MockResponse{Content: batch(2)}), gw)

	token, err := auth.Issue(testKey, "user-7", "u7@example.com", time.Hour)
	require.NoError(t, err)
	req := fileRequest(t, "notes.txt", []byte(sourceText), map[string]string{"count": "2"})
	req.Header.Set("Authorization", "Bearer "+token)

	w, env := do(t, srv.Router(), req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotZero(t, env.Data.UploadID)

	ups, err := s.UploadRepo().ListUploads(context.Background(), "user-7", 10)
	require.NoError(t, err)
	require.Len(t, ups, 1)
	assert.True(t, ups[0].Processed)
}

func TestOptionalSession_RejectsBadToken(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(), nil)
	req := jsonRequest(t, map[string]any{"text": sourceText})
	req.Header.Set("Authorization", "Bearer forged")
	w, env := do(t, srv.Router(), req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.ErrTokenInvalid, env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(llm.MockResponse{Content: batch(3)}), nil)
	router := srv.Router()
	do(t, router, jsonRequest(t, map[string]any{"text": sourceText}))
	do(t, router, jsonRequest(t, map[string]any{"text": ""}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), `dayne_questions_generated_total{source="text"} 3`)
	assert.Contains(t, string(body), `dayne_generation_failures_total{code="EMPTY_TEXT"} 1`)
	assert.Contains(t, string(body), "http_requests_total")
}

func TestRemoteGeneratorAgainstProxy(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(
		llm.MockResponse{Content: batch(4)},
		llm.MockResponse{Content: "garbage"},
	), nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	remote := questiongen.NewRemote(ts.URL)
	qs, err := remote.Generate(context.Background(), questiongen.Input{Text: sourceText, Language: i18n.English, Count: 4})
	require.NoError(t, err)
	assert.Len(t, qs, 4)

	_, err = remote.Generate(context.Background(), questiongen.Input{Text: sourceText, Language: i18n.English, Count: 4})
	assert.ErrorIs(t, err, questiongen.ErrUnparseable)
	assert.True(t, strings.HasPrefix(err.Error(), "could not parse AI response"), err.Error())
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
