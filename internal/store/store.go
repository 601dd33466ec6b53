package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/dayne-app/dayne/ent"

	// Postgres through database/sql, for hosted deployments.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db      *sql.DB
	client  *ent.Client
	dialect string
	seq     *sequenceCounter
}

// Open connects to dsn and runs auto-migration. A postgres:// or
// postgresql:// DSN selects Postgres; anything else is a SQLite path.
func Open(dsn string) (*Store, error) {
	driverName, dia := "sqlite", dialect.SQLite
	if IsPostgres(dsn) {
		driverName, dia = "pgx", dialect.Postgres
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dia == dialect.SQLite {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dia, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, dialect: dia, seq: seq}, nil
}

// IsPostgres reports whether dsn addresses a Postgres server.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the ent dialect name in use.
func (s *Store) Dialect() string {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns the LLM event log backed by this store.
func (s *Store) EventRepo() *LLMEventRepo {
	return &LLMEventRepo{client: s.client, db: s.db, seq: s.seq}
}

// UploadRepo returns the upload and question repository.
func (s *Store) UploadRepo() *UploadStore {
	return &UploadStore{client: s.client}
}

// StudySessionRepo returns the study history repository.
func (s *Store) StudySessionRepo() *StudySessionStore {
	return &StudySessionStore{client: s.client}
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DataDir returns $XDG_DATA_HOME/dayne, or ~/.local/share/dayne.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dayne"), nil
}

// DefaultDBPath resolves the database location in priority order:
// 1. DAYNE_DB environment variable (a path or a postgres:// DSN)
// 2. <DataDir>/dayne.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("DAYNE_DB"); p != "" {
		if IsPostgres(p) {
			return p, nil
		}
		return p, EnsureDir(p)
	}

	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "dayne.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
