package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

// SQLite stores values in a single table of a SQLite database.
type SQLite struct {
	db            *sql.DB
	maxValueBytes int
}

// OpenSQLite opens (creating if needed) the database at path and applies
// the schema. Use ":memory:" for a private in-memory database.
func OpenSQLite(ctx context.Context, path string, maxValueBytes int) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db, maxValueBytes: maxValueBytes}, nil
}

// Get implements ports.KeyValueStore.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}

	return value, true, nil
}

// Set implements ports.KeyValueStore.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	if err := checkSize(value, s.maxValueBytes); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}

	return nil
}

// Delete implements ports.KeyValueStore.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}

	return nil
}

// Capability implements ports.KeyValueStore.
func (s *SQLite) Capability() ports.Capability { return ports.Available }

// Name implements ports.HealthChecker.
func (s *SQLite) Name() string { return "storage" }

// Check implements ports.HealthChecker.
func (s *SQLite) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
