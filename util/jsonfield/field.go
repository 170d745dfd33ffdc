package jsonfield

import "strings"

type (
	// Mapper is implemented by records exposing their field table. The
	// table binds the record addresses, so JSONFields is implemented on
	// the pointer receiver.
	Mapper interface {
		JSONFields() Fields
	}

	// Field binds a JSON property to a Go location.
	Field struct {
		Name     string
		Required bool

		read    func(r *Reader)
		write   func(w *Writer)
		present func() bool
	}

	// Fields is the ordered property table of a record.
	Fields []Field
)

// Required binds a property always written, even when holding the zero
// value. A null input resets the location to the zero value.
func Required[T any](name string, p *T, c Codec[T]) Field {
	return Field{
		Name:     name,
		Required: true,
		read: func(r *Reader) {
			if r.ReadNull() {
				var zero T
				*p = zero
				return
			}
			*p = c.Read(r)
		},
		write:   func(w *Writer) { c.Write(w, *p) },
		present: func() bool { return true },
	}
}

// Optional binds a property written only when the location is not nil. A
// null input means absent.
func Optional[T any](name string, p **T, c Codec[T]) Field {
	return Field{
		Name: name,
		read: func(r *Reader) {
			if r.ReadNull() {
				*p = nil
				return
			}
			v := c.Read(r)
			*p = &v
		},
		write:   func(w *Writer) { c.Write(w, **p) },
		present: func() bool { return *p != nil },
	}
}

// RequiredList binds an array property always written. A nil slice is
// written as an empty array.
func RequiredList[T any](name string, p *[]T, c Codec[T]) Field {
	return Required(name, p, List(c))
}

// OptionalList binds an array property written only when the slice is not
// nil. An empty, non-nil slice is written as an empty array.
func OptionalList[T any](name string, p *[]T, c Codec[T]) Field {
	return OptionalSlice(name, p, List(c))
}

// OptionalSlice binds a slice property encoded by c as a single value, like
// a base64 string for Bytes. It is written only when the slice is not nil.
// A null input means absent.
func OptionalSlice[S ~[]E, E any](name string, p *S, c Codec[S]) Field {
	return Field{
		Name: name,
		read: func(r *Reader) {
			if r.ReadNull() {
				*p = nil
				return
			}
			*p = c.Read(r)
		},
		write:   func(w *Writer) { c.Write(w, *p) },
		present: func() bool { return *p != nil },
	}
}

// With returns the concatenation of the receiver and more, in order. It is
// used by records embedding a base record.
func (t Fields) With(more ...Field) Fields {
	l := make(Fields, 0, len(t)+len(more))
	l = append(l, t...)
	return append(l, more...)
}

// Lookup returns the field matching name, case-insensitively.
func (t Fields) Lookup(name string) (Field, bool) {
	for _, f := range t {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the property names in emission order.
func (t Fields) Names() []string {
	l := make([]string, len(t))
	for i, f := range t {
		l[i] = f.Name
	}
	return l
}

// Read loads the object at the reader position into the bound locations.
func (t Fields) Read(r *Reader) {
	r.ReadObject(func(name string) bool {
		t.readProperty(r, name)
		return true
	})
}

func (t Fields) readProperty(r *Reader, name string) {
	if f, ok := t.Lookup(name); ok {
		f.read(r)
	} else {
		r.Skip()
	}
}

// Write emits the bound locations as a JSON object.
func (t Fields) Write(w *Writer) {
	w.ObjectStart()
	t.writeMembers(w, 0)
	w.ObjectEnd()
}

// writeMembers emits the object members, count being the number of members
// already written in the enclosing object.
func (t Fields) writeMembers(w *Writer, count int) int {
	for _, f := range t {
		if !f.Required && !f.present() {
			continue
		}
		if count > 0 {
			w.More()
		}
		w.Property(f.Name)
		f.write(w)
		count++
	}
	return count
}
