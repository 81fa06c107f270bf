// Package sqlite provides SQLite-backed persistence for the catalog.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainerrors "github.com/cinelog/cinelog-server/internal/errors"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dateLayout is the storage format for date-only columns.
const dateLayout = "2006-01-02"

// Store provides SQLite-backed persistence for the catalog server.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates a new SQLite store at the given path.
// It configures WAL mode, sets pragmas, and runs schema migrations.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Small pool; SQLite allows a single writer.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// translateErr converts driver errors into domain errors at the store
// boundary. Unknown errors pass through unchanged so the original message
// survives to the response body.
func translateErr(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domainerrors.Conflict(conflictMsg).WithCause(err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domainerrors.Conflict(conflictMsg).WithCause(err)
	default:
		return err
	}
}

// formatDate formats a time.Time as a date-only string for storage.
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// parseDate parses a stored date-only string back to time.Time.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// nullString returns a sql.NullString that is NULL for the empty string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullableString returns a sql.NullString from a *string.
func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// boolToInt converts a bool to an int for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
