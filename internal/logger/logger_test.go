package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "json", &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("file", "notes.txt").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "notes.txt", entry["file"])
	assert.Contains(t, entry, "time")
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("loud", "json", &buf)
	log.Debug().Msg("debug")
	assert.Zero(t, buf.Len())
	log.Info().Msg("info")
	assert.NotZero(t, buf.Len())
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "pretty", &buf)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dayne.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString("x")
	assert.NoError(t, err)
}
