package jsondb

import (
	"strings"

	"github.com/samber/lo"
)

// Document is a raw stored document as decoded from the collection file.
type Document map[string]any

// Predicate decides whether a document matches.
type Predicate func(doc Document) bool

// FieldRef points at a top-level key of a document.
type FieldRef string

// Field starts a predicate on the named key.
func Field(name string) FieldRef {
	return FieldRef(name)
}

// Test matches when the key exists and fn accepts its value.
func (f FieldRef) Test(fn func(v any) bool) Predicate {
	return func(doc Document) bool {
		v, ok := doc[string(f)]
		if !ok {
			return false
		}
		return fn(v)
	}
}

// Contains matches string values that contain sub.
func (f FieldRef) Contains(sub string) Predicate {
	return f.Test(func(v any) bool {
		s, ok := v.(string)
		return ok && strings.Contains(s, sub)
	})
}

// Equals matches string values equal to want.
func (f FieldRef) Equals(want string) Predicate {
	return f.Test(func(v any) bool {
		s, ok := v.(string)
		return ok && s == want
	})
}

// Any matches list values holding at least one element equal to one of values.
func (f FieldRef) Any(values ...string) Predicate {
	return f.Test(func(v any) bool {
		items, ok := v.([]any)
		if !ok {
			return false
		}
		return lo.ContainsBy(items, func(item any) bool {
			s, ok := item.(string)
			return ok && lo.Contains(values, s)
		})
	})
}

// Or matches when any of ps matches.
func Or(ps ...Predicate) Predicate {
	return func(doc Document) bool {
		return lo.ContainsBy(ps, func(p Predicate) bool { return p(doc) })
	}
}

// And matches when every one of ps matches.
func And(ps ...Predicate) Predicate {
	return func(doc Document) bool {
		return lo.EveryBy(ps, func(p Predicate) bool { return p(doc) })
	}
}

// noteQuery is the composite predicate used by Store.Search.
func noteQuery(query string) Predicate {
	return Or(
		Field("content").Contains(query),
		Field("title").Contains(query),
		Field("tags").Any(query),
	)
}
