package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aretw0/notebook/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Path: ":memory:"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	notes := []core.Record{
		core.NewRecord("Books to Read", "Gang of Four, Clean Architecture", "books"),
		core.NewRecord("Hiking Trails", "Coal Creek, Davidson Mesa", "places"),
		core.NewRecord("Restaurants", "Parma in Boulder", "places", "food"),
	}
	for _, n := range notes {
		if err := s.Add(ctx, n.Title, n.Content, n.Tags...); err != nil {
			t.Fatal(err)
		}
	}
}

func TestStore_Search(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"books", []string{"Books to Read"}},
		{"Gang", []string{"Books to Read"}},
		{"places", []string{"Hiking Trails", "Restaurants"}},
		{"plac", nil},
		{"gang", nil},
		{"nonexistent-token-xyz", nil},
	}

	for _, tc := range tests {
		records, err := s.Search(ctx, tc.query)
		if err != nil {
			t.Fatalf("Search(%q): %v", tc.query, err)
		}
		if records == nil {
			t.Errorf("Search(%q) returned nil slice", tc.query)
		}
		if len(records) != len(tc.want) {
			t.Errorf("Search(%q) = %d records, want %d", tc.query, len(records), len(tc.want))
			continue
		}
		for i, r := range records {
			if r.Title != tc.want[i] {
				t.Errorf("Search(%q)[%d] = %q, want %q", tc.query, i, r.Title, tc.want[i])
			}
		}
	}
}

func TestStore_AddThenSearch(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	ctx := context.Background()

	if err := s.Add(ctx, "History Books", "The Color of Law", "books"); err != nil {
		t.Fatal(err)
	}

	records, err := s.Search(ctx, "History")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Title != "History Books" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if len(records[0].Tags) != 1 || records[0].Tags[0] != "books" {
		t.Errorf("Tags = %v", records[0].Tags)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
}

func TestStore_AddWithoutTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "Untagged", "body"); err != nil {
		t.Fatal(err)
	}
	records, err := s.Search(ctx, "Untagged")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Tags == nil || len(records[0].Tags) != 0 {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestStore_SkipsBadTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.db.Exec("INSERT INTO notes (title, content, tags) VALUES ('Broken', 'body', 'not json')"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "Fine", "body"); err != nil {
		t.Fatal(err)
	}

	records, err := s.Search(ctx, "body")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Title != "Fine" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestStore_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	s, err := Open(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "Persisted", "body", "x"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	records, err := reopened.Search(ctx, "x")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestStore_Closed(t *testing.T) {
	s := newTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Search(context.Background(), "x"); !errors.Is(err, core.ErrStorageUnavailable) {
		t.Errorf("Search after Close: %v", err)
	}
	if err := s.Add(context.Background(), "T", "C"); !errors.Is(err, core.ErrStorageUnavailable) {
		t.Errorf("Add after Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestStore_State(t *testing.T) {
	s := newTestStore(t)

	state, ok := s.State().(StoreState)
	if !ok {
		t.Fatalf("unexpected state type %T", s.State())
	}
	if state.Path != ":memory:" || state.Closed || state.Records != 0 {
		t.Errorf("unexpected state %+v", state)
	}

	if err := s.Add(context.Background(), "Books to Read", "Gang of Four", "books"); err != nil {
		t.Fatal(err)
	}
	if got := s.State().(StoreState).Records; got != 1 {
		t.Errorf("Records = %d, want 1", got)
	}
	if s.ComponentType() != "sqlite" {
		t.Errorf("ComponentType = %q", s.ComponentType())
	}
}
