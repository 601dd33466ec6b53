// Package config loads application settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dayne-app/dayne/internal/blob"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/store"
)

// Config holds all application configuration.
type Config struct {
	LLM llm.Config

	// ProxyURL routes generation through a dayne proxy instead of calling
	// the AI service directly.
	ProxyURL string

	// DB is a SQLite path or a postgres:// DSN. Empty selects the default
	// path under the data directory.
	DB       string
	Language i18n.Language

	// SessionToken identifies the signed-in user; AuthKey verifies it.
	SessionToken string
	AuthKey      string

	// Storage is used when its Endpoint is set, otherwise uploads are
	// copied to BlobDir.
	Storage blob.MinioConfig
	BlobDir string

	ServerPort string
	GinMode    string
	// AllowedOrigins empty means all origins are permitted.
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads configuration from DAYNE_* environment variables. A .env
// file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	dataDir, err := store.DataDir()
	if err != nil {
		dataDir = "."
	}

	return &Config{
		LLM:          llm.ConfigFromEnv(),
		ProxyURL:     os.Getenv("DAYNE_PROXY_URL"),
		DB:           os.Getenv("DAYNE_DB"),
		Language:     i18n.Parse(getEnv("DAYNE_LANGUAGE", string(i18n.Default))),
		SessionToken: os.Getenv("DAYNE_SESSION_TOKEN"),
		AuthKey:      os.Getenv("DAYNE_AUTH_KEY"),
		Storage: blob.MinioConfig{
			Endpoint:  os.Getenv("DAYNE_STORAGE_ENDPOINT"),
			AccessKey: os.Getenv("DAYNE_STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("DAYNE_STORAGE_SECRET_KEY"),
			Bucket:    getEnv("DAYNE_STORAGE_BUCKET", "uploads"),
			Region:    os.Getenv("DAYNE_STORAGE_REGION"),
			UseSSL:    getEnvBool("DAYNE_STORAGE_USE_SSL", true),
		},
		BlobDir:        getEnv("DAYNE_BLOB_DIR", filepath.Join(dataDir, "uploads")),
		ServerPort:     getEnv("DAYNE_SERVER_PORT", "8080"),
		GinMode:        getEnv("DAYNE_GIN_MODE", "release"),
		AllowedOrigins: parseList(os.Getenv("DAYNE_ALLOWED_ORIGINS")),
		LogLevel:       getEnv("DAYNE_LOG_LEVEL", "info"),
		LogFormat:      getEnv("DAYNE_LOG_FORMAT", "json"),
		LogFile:        getEnv("DAYNE_LOG_FILE", filepath.Join(dataDir, "dayne.log")),
	}
}

// UsesObjectStorage reports whether uploads go to an S3-compatible bucket.
func (c *Config) UsesObjectStorage() bool {
	return c.Storage.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseList splits a comma-separated string into trimmed entries.
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
