package jsonfield

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	item struct {
		Name  string
		Count *int64
		Tags  []string
		When  *time.Time
	}

	pair struct {
		Key   string
		Value item
	}

	holder struct {
		ID    uuid.UUID
		Data  []byte
		Items []pair
	}
)

func (t *item) JSONFields() Fields {
	return Fields{
		Required("Name", &t.Name, String),
		Optional("Count", &t.Count, Int64),
		OptionalList("Tags", &t.Tags, String),
		Optional("When", &t.When, Time),
	}
}

func (t *pair) JSONFields() Fields {
	return Fields{
		Required("Key", &t.Key, String),
		Required("Value", &t.Value, Object[item]()),
	}
}

func (t *holder) JSONFields() Fields {
	return Fields{
		Required("Id", &t.ID, UUID),
		OptionalSlice("Data", &t.Data, Bytes),
		RequiredList("Items", &t.Items, Object[pair]()),
	}
}

func TestUnmarshal(t *testing.T) {
	t.Run("property names are case insensitive", func(t *testing.T) {
		for _, s := range []string{
			`{"Name":"a","Count":3}`,
			`{"name":"a","count":3}`,
			`{"NAME":"a","cOuNt":3}`,
		} {
			var v item
			require.NoError(t, Unmarshal([]byte(s), &v), s)
			assert.Equal(t, "a", v.Name, s)
			require.NotNil(t, v.Count, s)
			assert.Equal(t, int64(3), *v.Count, s)
		}
	})

	t.Run("unknown properties are skipped", func(t *testing.T) {
		var v item
		s := `{"Extra":{"a":[1,2,{"b":null}]},"Name":"a","Other":"x"}`
		require.NoError(t, Unmarshal([]byte(s), &v))
		assert.Equal(t, item{Name: "a"}, v)
	})

	t.Run("null optional property is absent", func(t *testing.T) {
		var v item
		require.NoError(t, Unmarshal([]byte(`{"Name":"a","Count":null,"Tags":null}`), &v))
		assert.Nil(t, v.Count)
		assert.Nil(t, v.Tags)
	})

	t.Run("wrong token type is a format error", func(t *testing.T) {
		var v item
		err := Unmarshal([]byte(`{"Name":12}`), &v)
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("invalid date-time is a format error", func(t *testing.T) {
		var v item
		err := Unmarshal([]byte(`{"Name":"a","When":"yesterday"}`), &v)
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("truncated input is a format error", func(t *testing.T) {
		var v item
		err := Unmarshal([]byte(`{"Name":"a","Count":`), &v)
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("trailing data is a format error", func(t *testing.T) {
		for _, s := range []string{
			`{"Name":"a"} {"Name":"b"}`,
			`{"Name":"a"}]]]`,
			`{"Name":"a"},`,
		} {
			var v item
			err := Unmarshal([]byte(s), &v)
			assert.ErrorIs(t, err, ErrFormat, s)
		}
	})

	t.Run("trailing white space is accepted", func(t *testing.T) {
		var v item
		require.NoError(t, Unmarshal([]byte("{\"Name\":\"a\"} \n\t"), &v))
		assert.Equal(t, "a", v.Name)
	})

	t.Run("null string list element is a format error", func(t *testing.T) {
		var v item
		err := Unmarshal([]byte(`{"Name":"a","Tags":["x",null,"y"]}`), &v)
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("null optional bytes are absent", func(t *testing.T) {
		var v holder
		require.NoError(t, Unmarshal([]byte(`{"Id":"6f1c2a3e-1b2c-4d5e-8f90-a1b2c3d4e5f6","Data":null,"Items":[]}`), &v))
		assert.Nil(t, v.Data)
	})

	t.Run("key value items keep input order", func(t *testing.T) {
		var v holder
		s := `{"Id":"6f1c2a3e-1b2c-4d5e-8f90-a1b2c3d4e5f6","Items":[` +
			`{"Key":"k2","Value":{"Name":"b"}},` +
			`{"Key":"k1","Value":{"Name":"a","Tags":["x","y"]}}]}`
		require.NoError(t, Unmarshal([]byte(s), &v))
		require.Len(t, v.Items, 2)
		assert.Equal(t, "k2", v.Items[0].Key)
		assert.Equal(t, "b", v.Items[0].Value.Name)
		assert.Equal(t, "k1", v.Items[1].Key)
		assert.Equal(t, []string{"x", "y"}, v.Items[1].Value.Tags)
	})
}

func TestMarshal(t *testing.T) {
	t.Run("optional properties are omitted when nil", func(t *testing.T) {
		b, err := Marshal(&item{Name: "a"})
		require.NoError(t, err)
		assert.Equal(t, `{"Name":"a"}`, string(b))
	})

	t.Run("required properties are written when empty", func(t *testing.T) {
		b, err := Marshal(&holder{})
		require.NoError(t, err)
		assert.Equal(t, `{"Id":"00000000-0000-0000-0000-000000000000","Items":[]}`, string(b))
	})

	t.Run("properties are written in table order", func(t *testing.T) {
		count := int64(2)
		when := time.Date(2020, 1, 2, 3, 4, 5, 678000000, time.UTC)
		b, err := Marshal(&item{When: &when, Tags: []string{}, Count: &count, Name: "a"})
		require.NoError(t, err)
		assert.Equal(t, `{"Name":"a","Count":2,"Tags":[],"When":"2020-01-02T03:04:05.678Z"}`, string(b))
	})

	t.Run("bytes are base64 encoded", func(t *testing.T) {
		b, err := Marshal(&holder{Data: []byte("hello")})
		require.NoError(t, err)
		assert.Contains(t, string(b), `"Data":"aGVsbG8="`)
	})
}

func TestRoundTrip(t *testing.T) {
	s := `{"Id":"6f1c2a3e-1b2c-4d5e-8f90-a1b2c3d4e5f6","Data":"aGVsbG8=","Items":[` +
		`{"Key":"k1","Value":{"Name":"a","Count":-1,"Tags":["x"],"When":"2018-04-03T20:21:23.194Z"}}]}`
	var v holder
	require.NoError(t, Unmarshal([]byte(s), &v))
	b, err := Marshal(&v)
	require.NoError(t, err)
	assert.Equal(t, s, string(b))

	var w holder
	require.NoError(t, Unmarshal(b, &w))
	assert.Equal(t, v, w)
}

func TestCanonical(t *testing.T) {
	b, err := Canonical([]byte(`{"tags":["x"],"junk":1,"name":"a"}`), Object[item]())
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"a","Tags":["x"]}`, string(b))

	_, err = Canonical([]byte(`{"Name":"a"}]]]`), Object[item]())
	assert.ErrorIs(t, err, ErrFormat)
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, item{Name: "a"}, Object[item]()))
	v, err := Decode(&buf, Object[item]())
	require.NoError(t, err)
	assert.Equal(t, item{Name: "a"}, v)

	_, err = Decode(bytes.NewBufferString(`{"Name":"a"} {"Name":"b"}`), Object[item]())
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFieldsLookup(t *testing.T) {
	fields := (&item{}).JSONFields()
	f, ok := fields.Lookup("tAgS")
	assert.True(t, ok)
	assert.Equal(t, "Tags", f.Name)
	_, ok = fields.Lookup("Missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"Name", "Count", "Tags", "When"}, fields.Names())
}
