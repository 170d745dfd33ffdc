// Package enum implements the literal tables of integer backed
// enumerations transmitted as strings.
package enum

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type (
	// Table maps the values of an enumeration to their literal.
	Table[T ~int] struct {
		name     string
		toString map[T]string
		toID     map[string]T

		lenient      bool
		unrecognized T
	}
)

var (
	// ErrUnknownLiteral is returned when parsing a literal absent from a
	// strict table.
	ErrUnknownLiteral = errors.New("unknown literal for enum type")

	// ErrInvalidValue is returned when formatting a value without literal.
	ErrInvalidValue = errors.New("invalid value for enum type")
)

// New returns the table of the enumeration name. Literals are matched
// case-insensitively by Parse.
func New[T ~int](name string, m map[T]string) *Table[T] {
	t := &Table[T]{
		name:     name,
		toString: make(map[T]string, len(m)),
		toID:     make(map[string]T, len(m)),
	}
	for v, s := range m {
		t.toString[v] = s
		t.toID[strings.ToLower(s)] = v
	}
	return t
}

// Lenient makes Parse return unrecognized instead of an error for unknown
// literals. unrecognized must not have a literal, so it is never written
// back.
func (t *Table[T]) Lenient(unrecognized T) *Table[T] {
	if _, ok := t.toString[unrecognized]; ok {
		panic("enum: " + t.name + ": the unrecognized value has a literal")
	}
	t.lenient = true
	t.unrecognized = unrecognized
	return t
}

// Name returns the enumeration name.
func (t *Table[T]) Name() string {
	return t.name
}

// IsLenient returns true if unknown literals are accepted by Parse.
func (t *Table[T]) IsLenient() bool {
	return t.lenient
}

// String returns the literal of v, or an empty string.
func (t *Table[T]) String(v T) string {
	return t.toString[v]
}

// Parse returns the value of the literal s.
func (t *Table[T]) Parse(s string) (T, error) {
	if v, ok := t.toID[strings.ToLower(s)]; ok {
		return v, nil
	}
	if t.lenient {
		return t.unrecognized, nil
	}
	var zero T
	return zero, errors.Wrapf(ErrUnknownLiteral, "%s: %q", t.name, s)
}

// Format returns the literal of v.
func (t *Table[T]) Format(v T) (string, error) {
	if s, ok := t.toString[v]; ok {
		return s, nil
	}
	return "", errors.Wrapf(ErrInvalidValue, "%s: %d", t.name, int(v))
}

// Values returns the values having a literal, in ascending order.
func (t *Table[T]) Values() []T {
	l := make([]T, 0, len(t.toString))
	for v := range t.toString {
		l = append(l, v)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

// Names returns the literals, in ascending value order.
func (t *Table[T]) Names() []string {
	values := t.Values()
	l := make([]string, len(values))
	for i, v := range values {
		l[i] = t.toString[v]
	}
	return l
}

// MarshalText returns the literal of v, for the encoding.TextMarshaler
// implementations of the enumeration types.
func (t *Table[T]) MarshalText(v T) ([]byte, error) {
	s, err := t.Format(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses b into p, for the encoding.TextUnmarshaler
// implementations of the enumeration types.
func (t *Table[T]) UnmarshalText(p *T, b []byte) error {
	v, err := t.Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
