package enum

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	colorUnrecognized color = iota - 1
	colorInvalid
	colorRed
	colorGreen
)

var colors = New("Color", map[color]string{
	colorInvalid: "Invalid",
	colorRed:     "Red",
	colorGreen:   "Green",
})

func (t color) MarshalText() ([]byte, error) {
	return colors.MarshalText(t)
}

func (t *color) UnmarshalText(b []byte) error {
	return colors.UnmarshalText(t, b)
}

func TestParse(t *testing.T) {
	for s, expected := range map[string]color{
		"Red":     colorRed,
		"red":     colorRed,
		"GREEN":   colorGreen,
		"Invalid": colorInvalid,
	} {
		v, err := colors.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, v, s)
	}
}

func TestParseUnknown(t *testing.T) {
	t.Run("strict table returns an error", func(t *testing.T) {
		_, err := colors.Parse("Blue")
		assert.ErrorIs(t, err, ErrUnknownLiteral)
	})

	t.Run("lenient table returns the unrecognized value", func(t *testing.T) {
		lenient := New("Color", map[color]string{colorRed: "Red"}).Lenient(colorUnrecognized)
		v, err := lenient.Parse("Blue")
		require.NoError(t, err)
		assert.Equal(t, colorUnrecognized, v)
		assert.True(t, lenient.IsLenient())

		_, err = lenient.Format(v)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("unrecognized value must not have a literal", func(t *testing.T) {
		assert.Panics(t, func() {
			New("Color", map[color]string{colorRed: "Red"}).Lenient(colorRed)
		})
	})
}

func TestFormat(t *testing.T) {
	s, err := colors.Format(colorGreen)
	require.NoError(t, err)
	assert.Equal(t, "Green", s)

	_, err = colors.Format(color(42))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRoundTrip(t *testing.T) {
	for _, s := range colors.Names() {
		v, err := colors.Parse(s)
		require.NoError(t, err)
		out, err := colors.Format(v)
		require.NoError(t, err)
		assert.Equal(t, s, out)
	}
	for _, v := range colors.Values() {
		s, err := colors.Format(v)
		require.NoError(t, err)
		out, err := colors.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Invalid", "Red", "Green"}, colors.Names())
}

func TestTextMarshaler(t *testing.T) {
	b, err := json.Marshal(struct{ C color }{C: colorRed})
	require.NoError(t, err)
	assert.Equal(t, `{"C":"Red"}`, string(b))

	var v struct{ C color }
	require.NoError(t, json.Unmarshal([]byte(`{"C":"green"}`), &v))
	assert.Equal(t, colorGreen, v.C)
}
