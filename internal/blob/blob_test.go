package blob

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "user-1/1700000000123_notes.pdf", Key("user-1", "notes.pdf", now))
	assert.Equal(t, "user-1/1700000000123_notes.pdf", Key("user-1", "/tmp/x/notes.pdf", now))
	assert.Equal(t, "user-1/1700000000123_notes.pdf", Key("user-1", `C:\docs\notes.pdf`, now))
}

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir)

	err := s.Put(context.Background(), "user-1/1_notes.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "user-1", "1_notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, filepath.Join(dir, "user-1", "1_notes.txt"), s.Location("user-1/1_notes.txt"))
}

func TestLocalStore_RejectsEscapingKeys(t *testing.T) {
	s := NewLocalStore(t.TempDir())
	err := s.Put(context.Background(), "../outside.txt", strings.NewReader("x"), 1, "")
	assert.Error(t, err)
}

func TestMinioStore_Put(t *testing.T) {
	var gotPath, gotType atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			gotPath.Store(r.URL.Path)
			gotType.Store(r.Header.Get("Content-Type"))
		}
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	s, err := NewMinioStore(MinioConfig{Endpoint: u.Host, AccessKey: "ak", SecretKey: "sk", Bucket: "uploads", Region: "us-east-1"})
	require.NoError(t, err)

	err = s.Put(context.Background(), "user-1/1_notes.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/user-1/1_notes.txt", gotPath.Load())
	assert.Equal(t, "text/plain", gotType.Load())
	assert.Equal(t, "s3://uploads/user-1/1_notes.txt", s.Location("user-1/1_notes.txt"))
}

func TestNewMinioStore_RequiresBucket(t *testing.T) {
	_, err := NewMinioStore(MinioConfig{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}
