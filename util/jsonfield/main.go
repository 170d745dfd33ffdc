// Package jsonfield maps JSON objects to Go records through field tables.
//
// A record declares, in a JSONFields() method, the ordered list of its
// properties: the JSON name, whether the property is required, and the codec
// reading and writing the bound Go location. One generic reader and one
// generic writer then serve every record type:
//
//   - property names are matched case-insensitively,
//   - unknown properties are skipped,
//   - required properties are always written, optional ones only when set,
//   - properties are written in table order.
//
// Polymorphic families are handled by Union, which reads and writes the
// discriminator property before delegating to the concrete record table.
package jsonfield

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var (
	// ErrFormat is returned when the input is not the expected JSON shape.
	ErrFormat = errors.New("json format error")

	// ErrUnknownKind is returned when a discriminator value has no
	// registered concrete type, at read or write time.
	ErrUnknownKind = errors.New("unknown discriminator value")

	config = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Marshal returns the JSON encoding of the record.
func Marshal(m Mapper) ([]byte, error) {
	w := NewWriter(nil)
	m.JSONFields().Write(w)
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal loads the JSON object b into the record. Anything but white
// space after the object is a format error.
func Unmarshal(b []byte, m Mapper) error {
	r := NewReader(b)
	m.JSONFields().Read(r)
	r.End()
	return r.Err()
}

// MarshalValue returns the JSON encoding of v using the codec c.
func MarshalValue[T any](v T, c Codec[T]) ([]byte, error) {
	w := NewWriter(nil)
	c.Write(w, v)
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalValue decodes b using the codec c.
func UnmarshalValue[T any](b []byte, c Codec[T]) (T, error) {
	r := NewReader(b)
	v := c.Read(r)
	r.End()
	if err := r.Err(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Decode reads one value from rd using the codec c. The reader must end
// after the value.
func Decode[T any](rd io.Reader, c Codec[T]) (T, error) {
	r := NewStreamReader(rd)
	v := c.Read(r)
	r.End()
	if err := r.Err(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Encode writes the JSON encoding of v to wr using the codec c.
func Encode[T any](wr io.Writer, v T, c Codec[T]) error {
	w := NewWriter(wr)
	c.Write(w, v)
	if err := w.Err(); err != nil {
		return err
	}
	return w.Flush()
}

// Canonical decodes b with the codec c and reencodes the result. The
// output has canonical property names and order, and no unknown property.
func Canonical[T any](b []byte, c Codec[T]) ([]byte, error) {
	v, err := UnmarshalValue(b, c)
	if err != nil {
		return nil, err
	}
	out, err := MarshalValue(v, c)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(out), nil
}
