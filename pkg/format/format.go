// Package format holds the core.Presenter implementations.
package format

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/notebook/pkg/core"
)

// Names of the built-in presenters.
const (
	NameTerminal = "terminal"
	NameJSON     = "json"
	NameYAML     = "yaml"
)

// Default returns the standard set of presenters keyed by name.
func Default() map[string]core.Presenter {
	return map[string]core.Presenter{
		NameTerminal: NewTerminal(),
		NameJSON:     NewJSON(),
		NameYAML:     NewYAML(),
	}
}

// Lookup returns the built-in presenter registered under name.
func Lookup(name string) (core.Presenter, error) {
	all := Default()
	p, ok := all[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(all))
		for n := range all {
			names = append(names, n)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}

// normalize copies records so that nil tags encode as empty lists.
func normalize(records []core.Record) []core.Record {
	out := make([]core.Record, len(records))
	for i, r := range records {
		out[i] = core.NewRecord(r.Title, r.Content, r.Tags...)
	}
	return out
}
