package format

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notebook/pkg/core"
)

// YAML renders records as a YAML sequence of mappings with sorted keys.
type YAML struct {
	Indent int
}

// NewYAML creates a YAML presenter with 2-space indentation.
func NewYAML() *YAML {
	return &YAML{Indent: 2}
}

func (y *YAML) Present(records []core.Record) (string, error) {
	if err := core.ValidateAll(records); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(y.Indent)
	if err := encoder.Encode(normalize(records)); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrMalformedRecord, err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrMalformedRecord, err)
	}
	return buf.String(), nil
}

func (y *YAML) ComponentType() string {
	return NameYAML
}
