package platform

import (
	"log/slog"

	"github.com/aretw0/notebook/pkg/core"
)

// Backend names understood by Init.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// options holds the internal configuration for a Notebook.
type options struct {
	store     core.Store
	presenter core.Presenter
	logger    *slog.Logger
	backend   string
	format    string
	config    map[string]interface{}
}

// Option defines a functional option for configuring a Notebook.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend: BackendJSON,
		format:  "terminal",
		config:  make(map[string]interface{}),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger handed to the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a ready-made store. The backend option is then ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithPresenter injects a ready-made presenter. The format option is then ignored.
func WithPresenter(p core.Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithBackend selects the storage backend by name ("json" or "sqlite").
// Defaults to "json".
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithFormat selects the output format by name ("terminal", "json" or "yaml").
// Defaults to "terminal".
func WithFormat(name string) Option {
	return func(o *options) {
		o.format = name
	}
}

// WithMustExist makes Init fail when the backing file does not exist yet.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithTable selects the table inside a JSON collection file.
func WithTable(name string) Option {
	return func(o *options) {
		o.config["table"] = name
	}
}
