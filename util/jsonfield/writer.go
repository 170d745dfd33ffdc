package jsonfield

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Writer is a forward-only JSON writer. The first error encountered is
// retained.
type Writer struct {
	stream *jsoniter.Stream
	err    error
}

// NewWriter returns a Writer flushing to w. With a nil w, the output
// accumulates in the buffer returned by Bytes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{stream: jsoniter.NewStream(config, w, 512)}
}

// Err returns the first error met by the writer.
func (w *Writer) Err() error {
	if w.err != nil {
		return w.err
	}
	return w.stream.Error
}

// Fail records err as the writer error, unless an error is already set.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Bytes returns the buffered output.
func (w *Writer) Bytes() []byte {
	return w.stream.Buffer()
}

// Flush writes the buffered output to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.stream.Flush()
}

func (w *Writer) ObjectStart() {
	w.stream.WriteObjectStart()
}

func (w *Writer) ObjectEnd() {
	w.stream.WriteObjectEnd()
}

// Property writes the name of the next object member.
func (w *Writer) Property(name string) {
	w.stream.WriteObjectField(name)
}

// More writes the separator between two members or elements.
func (w *Writer) More() {
	w.stream.WriteMore()
}

func (w *Writer) ArrayStart() {
	w.stream.WriteArrayStart()
}

func (w *Writer) ArrayEnd() {
	w.stream.WriteArrayEnd()
}

func (w *Writer) WriteNull() {
	w.stream.WriteNil()
}

func (w *Writer) WriteString(s string) {
	w.stream.WriteString(s)
}

func (w *Writer) WriteBool(b bool) {
	w.stream.WriteBool(b)
}

func (w *Writer) WriteInt32(i int32) {
	w.stream.WriteInt32(i)
}

func (w *Writer) WriteInt64(i int64) {
	w.stream.WriteInt64(i)
}

func (w *Writer) WriteFloat64(f float64) {
	w.stream.WriteFloat64(f)
}
