package format

import (
	"strings"

	"github.com/aretw0/notebook/pkg/core"
)

// Terminal renders records as human-readable blocks:
//
//	Title: <title>
//	Content:
//		<content>
//	Tags: <tag>, <tag>
//	<blank line>
//
// Consecutive blocks are separated by one more blank line.
type Terminal struct{}

// NewTerminal creates a new terminal presenter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Present(records []core.Record) (string, error) {
	if err := core.ValidateAll(records); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Title: ")
		b.WriteString(r.Title)
		b.WriteString("\nContent:\n\t")
		b.WriteString(r.Content)
		b.WriteString("\nTags: ")
		b.WriteString(strings.Join(r.Tags, ", "))
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func (t *Terminal) ComponentType() string {
	return NameTerminal
}
