package sqlite

import (
	"context"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path       string `json:"path"`
	Closed     bool   `json:"closed"`
	OpenConns  int    `json:"open_connections"`
	InUseConns int    `json:"in_use_connections"`
	Records    int    `json:"records"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	stats := s.db.Stats()
	state := StoreState{
		Path:       s.Path,
		Closed:     s.closed,
		OpenConns:  stats.OpenConnections,
		InUseConns: stats.InUse,
	}
	s.mu.RUnlock()

	if !state.Closed {
		if n, err := s.Count(context.Background()); err == nil {
			state.Records = n
		}
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
