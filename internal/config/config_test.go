package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayne-app/dayne/internal/i18n"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"DAYNE_PROXY_URL", "DAYNE_DB", "DAYNE_LANGUAGE", "DAYNE_STORAGE_ENDPOINT",
		"DAYNE_STORAGE_USE_SSL", "DAYNE_SERVER_PORT", "DAYNE_ALLOWED_ORIGINS", "DAYNE_GIN_MODE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := Load()
	assert.Equal(t, i18n.English, cfg.Language)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.UsesObjectStorage())
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, "/data/dayne/uploads", cfg.BlobDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DAYNE_LANGUAGE", "kz")
	t.Setenv("DAYNE_PROXY_URL", "https://dayne.example.com")
	t.Setenv("DAYNE_STORAGE_ENDPOINT", "minio:9000")
	t.Setenv("DAYNE_STORAGE_USE_SSL", "false")
	t.Setenv("DAYNE_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DAYNE_SERVER_PORT", "9999")

	cfg := Load()
	assert.Equal(t, i18n.Kazakh, cfg.Language)
	assert.Equal(t, "https://dayne.example.com", cfg.ProxyURL)
	assert.True(t, cfg.UsesObjectStorage())
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "9999", cfg.ServerPort)
}

func TestGetEnvBool_Invalid(t *testing.T) {
	t.Setenv("DAYNE_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("DAYNE_TEST_BOOL", true))
}
