package output

import (
	"github.com/pkg/errors"
)

// Type encodes as an integer one of the supported output formats
// (human, json, jsonline, flat, yaml)
type Type int

const (
	// Human encodes the prefered human friendly output format
	Human Type = iota
	// JSON encodes the indented json output format
	JSON
	// JSONLine encodes the one line per document json output format
	JSONLine
	// Flat encodes the flattened json output format (a.'b#b'.c = d, a[0] = b)
	Flat
	// YAML encodes the yaml output format
	YAML
)

var toString = map[Type]string{
	Human:    "human",
	JSON:     "json",
	JSONLine: "jsonline",
	Flat:     "flat",
	YAML:     "yaml",
}

var toID = map[string]Type{
	"":          Human,
	"human":     Human,
	"json":      JSON,
	"jsonline":  JSONLine,
	"flat":      Flat,
	"flat_json": Flat,
	"yaml":      YAML,
}

func (t Type) String() string {
	return toString[t]
}

// New returns the output format named s. The empty string is the human
// format.
func New(s string) (Type, error) {
	t, ok := toID[s]
	if !ok {
		return Human, errors.Errorf("unknown output format: %s", s)
	}
	return t, nil
}

// Formats returns the names of the supported output formats.
func Formats() []string {
	return []string{"human", "json", "jsonline", "flat", "yaml"}
}

// MarshalText marshals the enum as its name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(toString[t]), nil
}

// UnmarshalText unmarshals a format name.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := New(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
