package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/notebook/pkg/core"
)

// JSON renders records as a pretty-printed JSON array.
// Keys are sorted within each record and nested levels are indented by Indent.
type JSON struct {
	Indent string
}

// NewJSON creates a JSON presenter with 4-space indentation.
func NewJSON() *JSON {
	return &JSON{Indent: "    "}
}

func (j *JSON) Present(records []core.Record) (string, error) {
	if err := core.ValidateAll(records); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", j.Indent)
	// core.Record declares its fields in key order, so the output is key-sorted.
	if err := enc.Encode(normalize(records)); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrMalformedRecord, err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

func (j *JSON) ComponentType() string {
	return NameJSON
}
