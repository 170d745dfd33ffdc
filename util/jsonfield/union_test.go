package jsonfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	shapeKind string

	shaper interface {
		Variant[shapeKind]
	}

	shape struct {
		Area float64
	}

	circle struct {
		shape
		Radius float64
	}

	square struct {
		shape
	}
)

func (t *shape) Kind() shapeKind { return "Shape" }

func (t *shape) JSONFields() Fields {
	return Fields{
		Required("Area", &t.Area, Float64),
	}
}

func (t *circle) Kind() shapeKind { return "Circle" }

func (t *circle) JSONFields() Fields {
	return t.shape.JSONFields().With(
		Required("Radius", &t.Radius, Float64),
	)
}

func (t *square) Kind() shapeKind { return "Square" }

func newShapes() *Union[shapeKind, shaper] {
	return NewUnion[shapeKind, shaper]("Shape", "Kind").
		Register("Shape", func() shaper { return &shape{} }).
		Register("Circle", func() shaper { return &circle{} })
}

func TestUnionRead(t *testing.T) {
	shapes := newShapes()

	t.Run("known kind selects the concrete type", func(t *testing.T) {
		v, err := UnmarshalValue([]byte(`{"kind":"circle","radius":2,"area":12.5,"extra":{"a":[1]}}`), shapes.Codec())
		require.NoError(t, err)
		require.IsType(t, &circle{}, v)
		assert.Equal(t, 2.0, v.(*circle).Radius)
		assert.Equal(t, 12.5, v.(*circle).Area)
	})

	t.Run("base kind selects the base type", func(t *testing.T) {
		v, err := UnmarshalValue([]byte(`{"Kind":"Shape","Area":1,"Radius":2}`), shapes.Codec())
		require.NoError(t, err)
		assert.Equal(t, &shape{Area: 1}, v)
	})

	t.Run("unknown kind is fatal", func(t *testing.T) {
		_, err := UnmarshalValue([]byte(`{"Kind":"Triangle","Area":1}`), shapes.Codec())
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("discriminator must come first", func(t *testing.T) {
		_, err := UnmarshalValue([]byte(`{"Radius":2,"Kind":"Circle"}`), shapes.Codec())
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("missing discriminator is a format error", func(t *testing.T) {
		_, err := UnmarshalValue([]byte(`{}`), shapes.Codec())
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("null discriminator is a format error", func(t *testing.T) {
		_, err := UnmarshalValue([]byte(`{"Kind":null,"Area":1}`), shapes.Codec())
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("trailing object is a format error", func(t *testing.T) {
		_, err := UnmarshalValue([]byte(`{"Kind":"Shape","Area":1} {"garbage"`), shapes.Codec())
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("list of variants", func(t *testing.T) {
		l, err := UnmarshalValue([]byte(`[{"Kind":"Circle","Radius":1,"Area":3.14},{"Kind":"Shape","Area":0}]`), List(shapes.Codec()))
		require.NoError(t, err)
		require.Len(t, l, 2)
		assert.IsType(t, &circle{}, l[0])
		assert.IsType(t, &shape{}, l[1])
	})
}

func TestUnionWrite(t *testing.T) {
	shapes := newShapes()

	t.Run("discriminator is written first", func(t *testing.T) {
		b, err := MarshalValue[shaper](&circle{shape: shape{Area: 12.5}, Radius: 2}, shapes.Codec())
		require.NoError(t, err)
		assert.Equal(t, `{"Kind":"Circle","Area":12.5,"Radius":2}`, string(b))
	})

	t.Run("unregistered kind is fatal", func(t *testing.T) {
		_, err := MarshalValue[shaper](&square{}, shapes.Codec())
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("nil is written as null", func(t *testing.T) {
		b, err := MarshalValue[shaper](nil, shapes.Codec())
		require.NoError(t, err)
		assert.Equal(t, `null`, string(b))
	})

	t.Run("nil concrete pointer is written as null", func(t *testing.T) {
		b, err := MarshalValue[shaper]((*circle)(nil), shapes.Codec())
		require.NoError(t, err)
		assert.Equal(t, `null`, string(b))
	})
}

func TestUnionRegistry(t *testing.T) {
	shapes := newShapes()
	assert.Equal(t, []shapeKind{"Shape", "Circle"}, shapes.Kinds())
	k, ok := shapes.Lookup("CIRCLE")
	assert.True(t, ok)
	assert.Equal(t, shapeKind("Circle"), k)
	assert.Panics(t, func() {
		shapes.Register("circle", func() shaper { return &circle{} })
	})
}
