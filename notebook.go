package notebook

import (
	"log/slog"

	"github.com/aretw0/notebook/internal/platform"
	"github.com/aretw0/notebook/pkg/core"
)

// --- Types ---

// Record is a public alias for the stored note.
type Record = core.Record

// Notebook is a public alias for the facade binding a store and a presenter.
type Notebook = core.Notebook

// --- Configuration ---

// Option defines a functional option for configuring a Notebook.
type Option = platform.Option

// Backend names.
const (
	BackendJSON   = platform.BackendJSON
	BackendSQLite = platform.BackendSQLite
)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithPresenter allows injecting a custom output formatter.
func WithPresenter(p core.Presenter) Option {
	return platform.WithPresenter(p)
}

// WithBackend selects the storage backend by name.
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithFormat selects the output format by name ("terminal", "json", "yaml").
func WithFormat(name string) Option {
	return platform.WithFormat(name)
}

// WithMustExist makes opening fail when the backing file is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithTable selects the table of a JSON collection file.
func WithTable(name string) Option {
	return platform.WithTable(name)
}

// --- Factory ---

// New opens the store at uri and returns a Notebook rendering with the chosen format.
func New(uri string, opts ...Option) (*Notebook, error) {
	return platform.New(uri, opts...)
}

// Open opens only the store, without a presenter.
func Open(uri string, opts ...Option) (core.Store, error) {
	return platform.Init(uri, opts...)
}

// FindStore recursively looks upwards for a collection file called name.
func FindStore(startDir, name string) (string, error) {
	return platform.FindStore(startDir, name)
}
