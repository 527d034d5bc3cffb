package platform

import (
	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/format"
)

// New opens the store and binds it to the selected presenter.
//
//	nb, err := notebook.New("./notes.json", notebook.WithFormat("json"))
func New(uri string, opts ...Option) (*core.Notebook, error) {
	o := applyOptions(opts)

	presenter := o.presenter
	if presenter == nil {
		p, err := format.Lookup(o.format)
		if err != nil {
			return nil, err
		}
		presenter = p
	}

	store, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	return core.NewNotebook(store, presenter), nil
}
