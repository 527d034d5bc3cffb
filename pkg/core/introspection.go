package core

import (
	"fmt"

	"github.com/aretw0/introspection"
)

// NotebookState exposes internal state for observability.
type NotebookState struct {
	StoreType     string `json:"store_type"`
	PresenterType string `json:"presenter_type"`
	Watchable     bool   `json:"watchable"`
}

// State implements introspection.Introspectable.
func (n *Notebook) State() any {
	storeType := "unknown"
	if n.store != nil {
		storeType = "store"
		if comp, ok := n.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	presenterType := "unknown"
	if n.presenter != nil {
		presenterType = fmt.Sprintf("%T", n.presenter)
		if comp, ok := n.presenter.(introspection.Component); ok {
			presenterType = comp.ComponentType()
		}
	}

	_, watchable := n.store.(Watchable)

	return NotebookState{
		StoreType:     storeType,
		PresenterType: presenterType,
		Watchable:     watchable,
	}
}

// ComponentType implements introspection.Component.
func (n *Notebook) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Notebook)(nil)
var _ introspection.Component = (*Notebook)(nil)
