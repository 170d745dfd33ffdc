package jsonfield

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

type (
	// Variant is a concrete member of a polymorphic family.
	Variant[K ~string] interface {
		Mapper
		Kind() K
	}

	// Union is the closed set of the concrete types of a polymorphic
	// family, indexed by their discriminator value.
	Union[K ~string, T Variant[K]] struct {
		family        string
		discriminator string
		kinds         []K
		factories     map[string]entry[K, T]
	}

	entry[K ~string, T any] struct {
		kind K
		new  func() T
	}
)

// NewUnion returns an empty family named family, whose discriminator
// property is named discriminator.
func NewUnion[K ~string, T Variant[K]](family, discriminator string) *Union[K, T] {
	return &Union[K, T]{
		family:        family,
		discriminator: discriminator,
		factories:     make(map[string]entry[K, T]),
	}
}

// Register adds a concrete type to the family. Registering the same kind
// twice panics.
func (u *Union[K, T]) Register(kind K, factory func() T) *Union[K, T] {
	key := strings.ToLower(string(kind))
	if _, ok := u.factories[key]; ok {
		panic("jsonfield: " + u.family + ": kind registered twice: " + string(kind))
	}
	u.factories[key] = entry[K, T]{kind: kind, new: factory}
	u.kinds = append(u.kinds, kind)
	return u
}

// Family returns the family name.
func (u *Union[K, T]) Family() string {
	return u.family
}

// Discriminator returns the discriminator property name.
func (u *Union[K, T]) Discriminator() string {
	return u.discriminator
}

// Kinds returns the registered discriminator values, in registration order.
func (u *Union[K, T]) Kinds() []K {
	l := make([]K, len(u.kinds))
	copy(l, u.kinds)
	return l
}

// Lookup returns the canonical form of kind, matched case-insensitively.
func (u *Union[K, T]) Lookup(kind string) (K, bool) {
	e, ok := u.factories[strings.ToLower(kind)]
	return e.kind, ok
}

// New allocates the concrete type registered for kind.
func (u *Union[K, T]) New(kind string) (T, error) {
	e, ok := u.factories[strings.ToLower(kind)]
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrUnknownKind, "%s: %s %q", u.family, u.discriminator, kind)
	}
	return e.new(), nil
}

// Read consumes the object at the reader position. The discriminator must
// be the first property.
func (u *Union[K, T]) Read(r *Reader) T {
	var (
		v      T
		zero   T
		fields Fields
		index  int
	)
	r.ReadObject(func(name string) bool {
		index++
		if index > 1 {
			fields.readProperty(r, name)
			return true
		}
		if !strings.EqualFold(name, u.discriminator) {
			r.Fail(errors.Wrapf(ErrFormat, "%s: expected %s as first property, got %q", u.family, u.discriminator, name))
			return false
		}
		kind := r.ReadString()
		if !r.ok() {
			return false
		}
		obj, err := u.New(kind)
		if err != nil {
			r.Fail(err)
			return false
		}
		v = obj
		fields = v.JSONFields()
		return true
	})
	if index == 0 && r.ok() {
		r.Fail(errors.Wrapf(ErrFormat, "%s: missing %s property", u.family, u.discriminator))
	}
	if !r.ok() {
		return zero
	}
	return v
}

// Write emits v with its discriminator as first property. A nil v, or a
// nil pointer to a concrete type, is written as null.
func (u *Union[K, T]) Write(w *Writer, v T) {
	if isNil(v) {
		w.WriteNull()
		return
	}
	kind := v.Kind()
	e, ok := u.factories[strings.ToLower(string(kind))]
	if !ok {
		w.Fail(errors.Wrapf(ErrUnknownKind, "%s: %s %q", u.family, u.discriminator, kind))
		w.WriteNull()
		return
	}
	w.ObjectStart()
	w.Property(u.discriminator)
	w.WriteString(string(e.kind))
	v.JSONFields().writeMembers(w, 1)
	w.ObjectEnd()
}

// Codec returns the family as a value codec.
func (u *Union[K, T]) Codec() Codec[T] {
	return Codec[T]{
		Read:  u.Read,
		Write: u.Write,
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
