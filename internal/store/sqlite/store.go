// Package sqlite provides a store.Backend that keeps the document as a single
// row in a SQLite database, using the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/edinacircular/circular-server/internal/store"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// documentName is the primary key of the single row this backend writes.
const documentName = "circular"

// Backend persists the document in the documents table.
type Backend struct {
	db *sql.DB
}

var _ store.Backend = (*Backend)(nil)

// Open creates or opens a SQLite database at path and applies the schema.
func Open(path string) (*Backend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
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

	return &Backend{db: db}, nil
}

// Name implements store.Backend.
func (b *Backend) Name() string { return "sqlite" }

// Read implements store.Backend.
func (b *Backend) Read(ctx context.Context) ([]byte, error) {
	var body []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE name = ?`, documentName,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("select document: %w", err)
	}
	return body, nil
}

// Write implements store.Backend.
func (b *Backend) Write(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		documentName, data, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// UpdatedAt returns when the document was last written, or the zero time if
// it never was.
func (b *Backend) UpdatedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := b.db.QueryRowContext(ctx,
		`SELECT updated_at FROM documents WHERE name = ?`, documentName,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("select updated_at: %w", err)
	}
	return parseTime(raw)
}

// Close implements store.Backend.
func (b *Backend) Close() error {
	return b.db.Close()
}

// formatTime formats a time.Time to RFC3339Nano for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses a RFC3339Nano string back to time.Time.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
