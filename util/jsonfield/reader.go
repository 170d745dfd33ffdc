package jsonfield

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Reader is a forward-only JSON reader. The first error encountered is
// retained and stops every subsequent iteration.
type Reader struct {
	iter *jsoniter.Iterator
	err  error
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{iter: jsoniter.ParseBytes(config, b)}
}

// NewStreamReader returns a Reader consuming rd.
func NewStreamReader(rd io.Reader) *Reader {
	return &Reader{iter: jsoniter.Parse(config, rd, 4096)}
}

// Err returns the first error met by the reader.
func (r *Reader) Err() error {
	if r.err != nil {
		return r.err
	}
	switch err := r.iter.Error; {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return errors.Wrap(ErrFormat, "unexpected end of input")
	default:
		return errors.Wrap(ErrFormat, err.Error())
	}
}

// Fail records err as the reader error, unless an error is already set.
func (r *Reader) Fail(err error) {
	if r.err != nil {
		return
	}
	r.err = err
	if r.iter.Error == nil {
		r.iter.ReportError("jsonfield", err.Error())
	}
}

func (r *Reader) ok() bool {
	return r.err == nil && r.iter.Error == nil
}

// End verifies only white space follows the value read.
func (r *Reader) End() {
	if !r.ok() {
		return
	}
	r.iter.WhatIsNext()
	if errors.Is(r.iter.Error, io.EOF) {
		r.iter.Error = nil
		return
	}
	r.Fail(errors.Wrap(ErrFormat, "trailing data after the value"))
}

// ReadNull consumes a JSON null and returns true, or returns false and
// leaves the reader untouched.
func (r *Reader) ReadNull() bool {
	return r.iter.ReadNil()
}

// ReadObject calls fn for each property of the object at the reader
// position. fn must consume the property value. Iteration stops when fn
// returns false or an error is recorded.
func (r *Reader) ReadObject(fn func(name string) bool) {
	r.iter.ReadObjectCB(func(_ *jsoniter.Iterator, name string) bool {
		if !r.ok() {
			return false
		}
		if !fn(name) {
			return false
		}
		return r.ok()
	})
}

// ReadArray calls fn for each element of the array at the reader
// position. fn must consume the element.
func (r *Reader) ReadArray(fn func() bool) {
	r.iter.ReadArrayCB(func(_ *jsoniter.Iterator) bool {
		if !r.ok() {
			return false
		}
		if !fn() {
			return false
		}
		return r.ok()
	})
}

// Skip consumes and discards the next value.
func (r *Reader) Skip() {
	r.iter.Skip()
}

// ReadString consumes a JSON string. A null is a format error, as for the
// other scalar types.
func (r *Reader) ReadString() string {
	if r.iter.WhatIsNext() == jsoniter.NilValue {
		r.Fail(errors.Wrap(ErrFormat, "unexpected null, expecting a string"))
		return ""
	}
	return r.iter.ReadString()
}

func (r *Reader) ReadBool() bool {
	return r.iter.ReadBool()
}

func (r *Reader) ReadInt32() int32 {
	return r.iter.ReadInt32()
}

func (r *Reader) ReadInt64() int64 {
	return r.iter.ReadInt64()
}

func (r *Reader) ReadFloat64() float64 {
	return r.iter.ReadFloat64()
}
