package jsondb

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/aretw0/notebook/pkg/core"
)

// DefaultTable is the table used when Config.Table is empty.
const DefaultTable = "_default"

// Config holds the configuration for the JSON document store.
type Config struct {
	Path      string
	Table     string // Table inside the collection file. Defaults to "_default".
	MustExist bool   // Fail instead of creating a missing collection file.
	Logger    *slog.Logger
}

// Store implements core.Store over a single JSON collection file.
//
// The file holds one object per table, each mapping a numeric document ID
// to a flat {"title", "content", "tags"} object:
//
//	{"_default": {"1": {"content": "...", "tags": ["books"], "title": "..."}}}
//
// Every operation reads the file again, so changes made by other tools are
// always visible.
type Store struct {
	Path   string
	config Config
	logger *slog.Logger

	mu       sync.RWMutex
	closed   bool
	watchers int
}

// collection is the decoded file: table name -> document ID -> raw document.
type collection map[string]map[string]json.RawMessage

// Open opens the collection file at config.Path, creating it when allowed.
func Open(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("%w: empty path", core.ErrStorageUnavailable)
	}
	if config.Table == "" {
		config.Table = DefaultTable
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{Path: config.Path, config: config, logger: logger}

	info, err := os.Stat(s.Path)
	switch {
	case os.IsNotExist(err):
		if config.MustExist {
			return nil, fmt.Errorf("%w: collection file does not exist: %s", core.ErrStorageUnavailable, s.Path)
		}
		if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory: %v", core.ErrStorageUnavailable, err)
		}
		if err := s.write(collection{}); err != nil {
			return nil, err
		}
		s.logger.Debug("created collection file", "path", s.Path)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", core.ErrStorageUnavailable, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: collection path is a directory: %s", core.ErrStorageUnavailable, s.Path)
	}

	// Fail early on a corrupt file.
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

// Search returns the records matching query in ascending document ID order.
// Documents missing a title or content are skipped and logged.
func (s *Store) Search(ctx context.Context, query string) ([]core.Record, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	docs, err := s.documents()
	if err != nil {
		return nil, err
	}

	match := noteQuery(query)
	records := make([]core.Record, 0)
	for _, d := range docs {
		if !match(d.doc) {
			continue
		}
		rec, err := decodeRecord(d.doc)
		if err != nil {
			s.logger.Warn("skipping stored document", "id", d.id, "table", s.config.Table, "error", err)
			continue
		}
		records = append(records, rec)
	}

	s.logger.Debug("search", "query", query, "matches", len(records))
	return records, nil
}

// Add inserts a new document under the next free ID.
func (s *Store) Add(ctx context.Context, title, content string, tags ...string) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.read()
	if err != nil {
		return err
	}

	table := coll[s.config.Table]
	if table == nil {
		table = make(map[string]json.RawMessage)
		coll[s.config.Table] = table
	}

	next := 1
	for key := range table {
		if id, err := strconv.Atoi(key); err == nil && id >= next {
			next = id + 1
		}
	}

	raw, err := json.Marshal(core.NewRecord(title, content, tags...))
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	table[strconv.Itoa(next)] = raw

	if err := s.write(coll); err != nil {
		return err
	}

	s.logger.Debug("record added", "id", next, "title", title)
	return nil
}

// Close marks the store as released. Further operations fail.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("%w: store is closed", core.ErrStorageUnavailable)
	}
	return nil
}

type storedDoc struct {
	id  int
	doc Document
}

// documents returns the documents of the configured table sorted by ID.
func (s *Store) documents() ([]storedDoc, error) {
	s.mu.RLock()
	coll, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	table := coll[s.config.Table]
	docs := make([]storedDoc, 0, len(table))
	for key, raw := range table {
		id, err := strconv.Atoi(key)
		if err != nil {
			s.logger.Warn("skipping document with non-numeric id", "id", key)
			continue
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
			s.logger.Warn("skipping document that is not an object", "id", key)
			continue
		}
		docs = append(docs, storedDoc{id: id, doc: doc})
	}

	slices.SortFunc(docs, func(a, b storedDoc) int { return cmp.Compare(a.id, b.id) })
	return docs, nil
}

func (s *Store) read() (collection, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStorageUnavailable, err)
	}

	coll := make(collection)
	if len(bytes.TrimSpace(data)) == 0 {
		return coll, nil
	}
	if err := json.Unmarshal(data, &coll); err != nil {
		return nil, fmt.Errorf("%w: corrupt collection file %s: %v", core.ErrStorageUnavailable, s.Path, err)
	}
	return coll, nil
}

func (s *Store) write(coll collection) error {
	data, err := json.MarshalIndent(coll, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStorageUnavailable, err)
	}
	return nil
}

// decodeRecord converts a raw document into a Record.
// A missing tags key is treated as an empty list.
func decodeRecord(doc Document) (core.Record, error) {
	title, ok := doc["title"].(string)
	if !ok {
		return core.Record{}, fmt.Errorf("%w: missing or non-string title", core.ErrInvalidRecord)
	}
	content, ok := doc["content"].(string)
	if !ok {
		return core.Record{}, fmt.Errorf("%w: missing or non-string content in %q", core.ErrInvalidRecord, title)
	}

	tags := make([]string, 0)
	switch raw := doc["tags"].(type) {
	case nil:
	case []any:
		for _, item := range raw {
			tag, ok := item.(string)
			if !ok {
				return core.Record{}, fmt.Errorf("%w: non-string tag in %q", core.ErrInvalidRecord, title)
			}
			tags = append(tags, tag)
		}
	default:
		return core.Record{}, fmt.Errorf("%w: tags of %q is not a list", core.ErrInvalidRecord, title)
	}

	return core.Record{Title: title, Content: content, Tags: tags}, nil
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
