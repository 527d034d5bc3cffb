// Record is the central entity of the domain.
package core

import (
	"fmt"
	"unicode/utf8"
)

// Record is a stored note.
// Field order matches the lexicographic order of the JSON keys so that the
// default encoding is already key-sorted.
type Record struct {
	Content string   `json:"content" yaml:"content"`
	Tags    []string `json:"tags" yaml:"tags"`
	Title   string   `json:"title" yaml:"title"`
}

// NewRecord builds a Record with its own copy of tags.
// A nil or empty tags list always yields a fresh, empty, non-nil slice.
func NewRecord(title, content string, tags ...string) Record {
	owned := make([]string, len(tags))
	copy(owned, tags)
	return Record{Title: title, Content: content, Tags: owned}
}

// HasTag reports whether tag is exactly equal to one of the record's tags.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks the record can be rendered without garbling.
func (r Record) Validate() error {
	if !utf8.ValidString(r.Title) {
		return fmt.Errorf("%w: title is not valid UTF-8", ErrMalformedRecord)
	}
	if !utf8.ValidString(r.Content) {
		return fmt.Errorf("%w: content of %q is not valid UTF-8", ErrMalformedRecord, r.Title)
	}
	for i, t := range r.Tags {
		if !utf8.ValidString(t) {
			return fmt.Errorf("%w: tag %d of %q is not valid UTF-8", ErrMalformedRecord, i, r.Title)
		}
	}
	return nil
}

// ValidateAll validates every record in order and stops at the first failure.
func ValidateAll(records []Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EventType represents the type of change observed on a store.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the backing store.
type Event struct {
	Type      EventType
	Source    string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Source)
}
