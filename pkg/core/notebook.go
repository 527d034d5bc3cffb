package core

import (
	"context"
	"errors"
	"fmt"
)

// Notebook binds one Store and one Presenter for its whole lifetime.
type Notebook struct {
	store     Store
	presenter Presenter
}

// NewNotebook creates a new Notebook.
func NewNotebook(store Store, presenter Presenter) *Notebook {
	return &Notebook{store: store, presenter: presenter}
}

// Search queries the store and renders the matches with the presenter.
func (n *Notebook) Search(ctx context.Context, query string) (string, error) {
	records, err := n.store.Search(ctx, query)
	if err != nil {
		return "", err
	}
	return n.presenter.Present(records)
}

// Add appends a new note to the store.
func (n *Notebook) Add(ctx context.Context, title, content string, tags ...string) error {
	return n.store.Add(ctx, title, content, tags...)
}

// Close releases the underlying store.
func (n *Notebook) Close() error {
	return n.store.Close()
}

// Watch re-runs query every time the store changes and emits the rendered result.
// The first value is the current result. Render errors end the stream and are
// returned through errc.
func (n *Notebook) Watch(ctx context.Context, query string) (<-chan string, <-chan error, error) {
	w, ok := n.store.(Watchable)
	if !ok {
		return nil, nil, ErrNotWatchable
	}

	first, err := n.Search(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to watch store: %w", err)
	}

	out := make(chan string, 1)
	errc := make(chan error, 1)
	out <- first

	go func() {
		defer close(out)
		defer close(errc)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				text, err := n.Search(ctx, query)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						errc <- err
					}
					return
				}
				select {
				case out <- text:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, errc, nil
}
