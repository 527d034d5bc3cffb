package jsondb

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path      string `json:"path"`
	Table     string `json:"table"`
	MustExist bool   `json:"must_exist"`
	Closed    bool   `json:"closed"`
	Watchers  int    `json:"watchers"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:      s.Path,
		Table:     s.config.Table,
		MustExist: s.config.MustExist,
		Closed:    s.closed,
		Watchers:  s.watchers,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "jsondb"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
