package jsondb

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notebook/pkg/core"
)

// Watch emits an event whenever the collection file changes on disk.
// Bursts of filesystem events are coalesced: a slow consumer sees at most one
// pending event. The channel is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Atomic writes replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(s.Path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.Path), err)
	}

	events := make(chan core.Event, 1)
	s.setWatching(1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatching(-1)
		defer watcher.Close()
		if err := s.watchLoop(ctx, watcher, events); err != nil {
			s.logger.Error("watcher stopped", "path", s.Path, "error", err)
			return err
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher panic", "path", s.Path, "error", err)
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) error {
	target := filepath.Clean(s.Path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			s.logger.Debug("collection changed", "path", event.Name, "op", event.Op.String())

			select {
			case events <- core.Event{Type: eType, Source: s.Path, Timestamp: time.Now().Unix()}:
			default:
				// An event is already pending.
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func (s *Store) setWatching(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers += delta
}
