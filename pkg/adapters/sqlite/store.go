// Package sqlite implements core.Store on top of an embedded SQLite database
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/aretw0/notebook/pkg/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	title   TEXT NOT NULL,
	content TEXT NOT NULL,
	tags    TEXT NOT NULL DEFAULT '[]'
);`

// instr() is case-sensitive, unlike LIKE.
const searchQuery = `
SELECT id, title, content, tags FROM notes
WHERE ?1 = ''
   OR instr(content, ?1) > 0
   OR instr(title, ?1) > 0
   OR CASE WHEN json_valid(notes.tags)
      THEN EXISTS (SELECT 1 FROM json_each(notes.tags) WHERE json_each.value = ?1)
      ELSE 0 END
ORDER BY id`

// Config holds the configuration for the SQLite store.
type Config struct {
	Path   string // File path, or ":memory:".
	Logger *slog.Logger
}

// Store implements core.Store using SQLite.
type Store struct {
	Path   string
	db     *sql.DB
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the database at config.Path and ensures the schema.
func Open(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("%w: empty path", core.ErrStorageUnavailable)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %q: %v", core.ErrStorageUnavailable, config.Path, err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", core.ErrStorageUnavailable, err)
	}

	logger.Debug("sqlite store opened", "path", config.Path)
	return &Store{Path: config.Path, db: db, logger: logger}, nil
}

// Search returns the matching records in insertion (id) order.
// Rows whose tags column is not a JSON list of strings are skipped and logged.
func (s *Store) Search(ctx context.Context, query string) ([]core.Record, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, searchQuery, query)
	if err != nil {
		return nil, wrapQueryErr("search", err)
	}
	defer rows.Close()

	records := make([]core.Record, 0)
	for rows.Next() {
		var (
			id       int64
			rec      core.Record
			tagsJSON string
		)
		if err := rows.Scan(&id, &rec.Title, &rec.Content, &tagsJSON); err != nil {
			return nil, wrapQueryErr("scan", err)
		}
		rec.Tags = make([]string, 0)
		if err := json.Unmarshal([]byte(tagsJSON), &rec.Tags); err != nil || rec.Tags == nil {
			s.logger.Warn("skipping stored row", "id", id, "error", fmt.Errorf("%w: bad tags column", core.ErrInvalidRecord))
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("iterate", err)
	}

	s.logger.Debug("search", "query", query, "matches", len(records))
	return records, nil
}

// Add inserts a new row.
func (s *Store) Add(ctx context.Context, title, content string, tags ...string) error {
	if err := s.check(); err != nil {
		return err
	}

	rec := core.NewRecord(title, content, tags...)
	tagsJSON, err := json.Marshal(rec.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (title, content, tags) VALUES (?, ?, ?)",
		rec.Title, rec.Content, string(tagsJSON),
	)
	if err != nil {
		return wrapQueryErr("insert", err)
	}

	id, _ := res.LastInsertId()
	s.logger.Debug("record added", "id", id, "title", title)
	return nil
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&n); err != nil {
		return 0, wrapQueryErr("count", err)
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *Store) check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("%w: store is closed", core.ErrStorageUnavailable)
	}
	return nil
}

// wrapQueryErr keeps context errors intact and marks everything else as a storage failure.
func wrapQueryErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", core.ErrStorageUnavailable, op, err)
}

var _ core.Store = (*Store)(nil)
