package jsonfield

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type (
	// Codec reads and writes one JSON value as a T.
	Codec[T any] struct {
		Read  func(r *Reader) T
		Write func(w *Writer, v T)
	}

	// EnumTable is the literal table of an enumeration.
	EnumTable[T any] interface {
		Parse(s string) (T, error)
		Format(v T) (string, error)
	}
)

var (
	String = Codec[string]{
		Read:  (*Reader).ReadString,
		Write: (*Writer).WriteString,
	}

	Bool = Codec[bool]{
		Read:  (*Reader).ReadBool,
		Write: (*Writer).WriteBool,
	}

	Int32 = Codec[int32]{
		Read:  (*Reader).ReadInt32,
		Write: (*Writer).WriteInt32,
	}

	Int64 = Codec[int64]{
		Read:  (*Reader).ReadInt64,
		Write: (*Writer).WriteInt64,
	}

	Float64 = Codec[float64]{
		Read:  (*Reader).ReadFloat64,
		Write: (*Writer).WriteFloat64,
	}

	// Time is a RFC 3339 date-time, with optional fractional seconds.
	Time = Codec[time.Time]{
		Read: func(r *Reader) time.Time {
			s := r.ReadString()
			if !r.ok() {
				return time.Time{}
			}
			v, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				r.Fail(errors.Wrapf(ErrFormat, "invalid date-time %q", s))
			}
			return v
		},
		Write: func(w *Writer, v time.Time) {
			w.WriteString(v.Format(time.RFC3339Nano))
		},
	}

	UUID = Codec[uuid.UUID]{
		Read: func(r *Reader) uuid.UUID {
			s := r.ReadString()
			if !r.ok() {
				return uuid.Nil
			}
			v, err := uuid.Parse(s)
			if err != nil {
				r.Fail(errors.Wrapf(ErrFormat, "invalid uuid %q", s))
			}
			return v
		},
		Write: func(w *Writer, v uuid.UUID) {
			w.WriteString(v.String())
		},
	}

	// Bytes is a standard base64 encoded string.
	Bytes = Codec[[]byte]{
		Read: func(r *Reader) []byte {
			s := r.ReadString()
			if !r.ok() {
				return nil
			}
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				r.Fail(errors.Wrapf(ErrFormat, "invalid base64 value: %s", err))
			}
			return b
		},
		Write: func(w *Writer, v []byte) {
			w.WriteString(base64.StdEncoding.EncodeToString(v))
		},
	}
)

// StringOf is the codec of a strongly typed string wrapper.
func StringOf[T ~string]() Codec[T] {
	return Codec[T]{
		Read:  func(r *Reader) T { return T(r.ReadString()) },
		Write: func(w *Writer, v T) { w.WriteString(string(v)) },
	}
}

// Object is the codec of a nested record.
func Object[T any, PT interface {
	*T
	Mapper
}]() Codec[T] {
	return Codec[T]{
		Read: func(r *Reader) T {
			var v T
			PT(&v).JSONFields().Read(r)
			return v
		},
		Write: func(w *Writer, v T) {
			PT(&v).JSONFields().Write(w)
		},
	}
}

// List is the codec of a JSON array of c values. A nil slice is written as
// an empty array.
func List[T any](c Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		Read: func(r *Reader) []T {
			l := make([]T, 0)
			r.ReadArray(func() bool {
				l = append(l, c.Read(r))
				return true
			})
			return l
		},
		Write: func(w *Writer, l []T) {
			w.ArrayStart()
			for i, v := range l {
				if i > 0 {
					w.More()
				}
				c.Write(w, v)
			}
			w.ArrayEnd()
		},
	}
}

// Enum is the codec of an enumeration transmitted as its literal.
func Enum[T any](table EnumTable[T]) Codec[T] {
	return Codec[T]{
		Read: func(r *Reader) T {
			var zero T
			s := r.ReadString()
			if !r.ok() {
				return zero
			}
			v, err := table.Parse(s)
			if err != nil {
				r.Fail(err)
				return zero
			}
			return v
		},
		Write: func(w *Writer, v T) {
			s, err := table.Format(v)
			if err != nil {
				w.Fail(err)
				w.WriteNull()
				return
			}
			w.WriteString(s)
		},
	}
}
