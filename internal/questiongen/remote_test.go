package questiongen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/response"
)

func writeEnvelope(w http.ResponseWriter, status int, env response.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestRemote_Success(t *testing.T) {
	var got TextRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, QuestionsPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, response.Response{Data: QuestionsData{Questions: []Question{
			{ID: "1", Text: "Q1?", Answer: "A", Options: []string{"A", "B"}, Type: TypeMultipleChoice},
			{ID: "2", Text: "Q2?", Answer: "C", Options: []string{"C", "D"}, Type: TypeMultipleChoice},
		}}})
	}))
	defer srv.Close()

	gen := NewRemote(srv.URL+"/", WithBearerToken("tok"))
	qs, err := gen.Generate(context.Background(), Input{Text: sourceText, Language: i18n.Kazakh, Count: 2})
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Q2?", qs[1].Text)

	assert.Equal(t, "kz", got.Language)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, sourceText, got.Text)
	assert.Equal(t, "Bearer tok", auth)
}

func TestRemote_TextTooShortMakesNoCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).Generate(context.Background(), Input{Text: "too short", Count: 5})
	assert.ErrorIs(t, err, ErrTextTooShort)
	assert.Zero(t, calls)
}

func TestRemote_ErrorCodesMapToSentinels(t *testing.T) {
	tests := []struct {
		code   response.ErrCode
		status int
		want   error
	}{
		{response.ErrUnparseable, http.StatusBadGateway, ErrUnparseable},
		{response.ErrNoQuestions, http.StatusBadGateway, ErrNoQuestions},
		{response.ErrTextTooShort, http.StatusUnprocessableEntity, ErrTextTooShort},
		{response.ErrNotConfigured, http.StatusServiceUnavailable, llm.ErrNotConfigured},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, response.Response{Error: &response.ErrorBody{
					Code:    tt.code,
					Message: response.GetMessage(tt.code),
				}})
			}))
			defer srv.Close()

			_, err := NewRemote(srv.URL).Generate(context.Background(), Input{Text: sourceText, Count: 3})
			assert.ErrorIs(t, err, tt.want)

			var re *RemoteError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.code, re.Code)
			assert.Equal(t, tt.status, re.Status)
		})
	}
}

func TestRemote_UpstreamMessagePreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadGateway, response.Response{Error: &response.ErrorBody{
			Code:    response.ErrUpstream,
			Message: "failed to generate questions: You exceeded your current quota",
		}})
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).Generate(context.Background(), Input{Text: sourceText, Count: 3})
	require.Error(t, err)
	assert.Equal(t, "failed to generate questions: You exceeded your current quota", err.Error())

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "You exceeded your current quota", ue.Message)
}

func TestRemote_NonEnvelopeResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).Generate(context.Background(), Input{Text: sourceText, Count: 3})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadGateway, ue.Status)
}

func TestRemote_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewRemote(url).Generate(context.Background(), Input{Text: sourceText, Count: 3})
	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestRemote_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, response.Response{Data: QuestionsData{}})
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).Generate(context.Background(), Input{Text: sourceText, Count: 3})
	assert.ErrorIs(t, err, ErrNoQuestions)
}
