package core

import "context"

// Store defines the contract for persisting and querying records.
// Adhering to this interface keeps the Notebook independent of the
// underlying storage mechanism (JSON file, SQLite, memory).
type Store interface {
	// Search returns every record whose content or title contains query,
	// or whose tags hold an element equal to query.
	// Matching is case-sensitive. Order is store-native.
	Search(ctx context.Context, query string) ([]Record, error)

	// Add appends a new record. Duplicate titles are allowed.
	Add(ctx context.Context, title, content string, tags ...string) error

	// Close releases the backing resources. Operations after Close fail.
	Close() error
}

// Presenter renders a sequence of records to text.
// Implementations must be pure: identical input yields identical output.
type Presenter interface {
	Present(records []Record) (string, error)
}

// Watchable defines an interface for stores that can report external changes.
type Watchable interface {
	// Watch emits an event every time the backing store changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
