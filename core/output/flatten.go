package output

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type kv struct {
	k string
	v string
}

func flatten(value any, lkey *bytes.Buffer, flattened map[string]string) {
	switch v := value.(type) {
	case nil:
		flattened[lkey.String()] = "null"
	case map[string]any:
		if len(v) == 0 {
			flattened[lkey.String()] = "{}"
			return
		}
		originalLen := lkey.Len()
		for key, val := range v {
			if lkey.Len() > 0 {
				lkey.WriteByte('.')
			}
			if needQuote(key) {
				lkey.WriteString(strconv.Quote(key))
			} else {
				lkey.WriteString(key)
			}
			flatten(val, lkey, flattened)
			lkey.Truncate(originalLen)
		}
	case []any:
		if len(v) == 0 {
			flattened[lkey.String()] = "[]"
			return
		}
		originalLen := lkey.Len()
		for i, val := range v {
			lkey.WriteByte('[')
			lkey.WriteString(strconv.Itoa(i))
			lkey.WriteByte(']')
			flatten(val, lkey, flattened)
			lkey.Truncate(originalLen)
		}
	case string:
		flattened[lkey.String()] = strconv.Quote(v)
	case bool:
		flattened[lkey.String()] = strconv.FormatBool(v)
	case json.Number:
		flattened[lkey.String()] = v.String()
	case float64:
		flattened[lkey.String()] = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		if b, err := json.Marshal(value); err == nil {
			flattened[lkey.String()] = string(b)
		}
	}
}

// Flatten accepts a decoded json document and returns a flat map with
// keys like a."b/c".d[0].e
func Flatten(value any) map[string]string {
	flattened := make(map[string]string)
	var b bytes.Buffer
	flatten(value, &b, flattened)
	return flattened
}

// SprintFlat accepts a JSON formatted byte array and returns the sorted
// "key = val" lines. A nil colorize disables the key coloring.
func SprintFlat(b []byte, colorize *PaletteFunc) (string, error) {
	l, err := sprintFlatData(b)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, e := range l {
		if colorize != nil {
			buf.WriteString(colorize.Primary(e.k + " ="))
		} else {
			buf.WriteString(e.k + " =")
		}
		buf.WriteString(" ")
		buf.WriteString(e.v)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func sprintFlatData(b []byte) ([]kv, error) {
	var data any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	flattened := Flatten(data)
	l := make([]kv, 0, len(flattened))
	for k, v := range flattened {
		l = append(l, kv{k: k, v: v})
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].k < l[j].k
	})
	return l, nil
}

func needQuote(key string) bool {
	if key == "" || strings.ContainsAny(key, ".#$/[]\" ") {
		return true
	}
	return key[0] >= '0' && key[0] <= '9'
}
