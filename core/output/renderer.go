// Package output renders documents in the format selected by the user.
//
// Model values are serialized with their field mappers, so the json,
// flat and yaml renderings use the property names and order of the
// wire format.
package output

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/andreazorzetto/yh/highlight"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// RenderFunc is the protype of human format renderer functions.
	RenderFunc func() string

	// Renderer hosts the renderer options and data, and exposes the rendering
	// method.
	Renderer struct {
		Format        string
		Color         string
		Data          any
		HumanRenderer RenderFunc
		Colorize      *PaletteFunc
		Stream        bool
	}

	renderer interface {
		Render() string
	}
)

var (
	indent                = "    "
	regexpJSONKey         = regexp.MustCompile(`(".+":)`)
	regexpJSONHealthState = regexp.MustCompile(`(: ")(Ok|Warning|Error|Up|Down)(")`)
)

// ToJSON returns the compact json representation of v. Field mappers are
// used when v has some, raw json documents are returned as is.
func ToJSON(v any) ([]byte, error) {
	switch data := v.(type) {
	case jsonfield.Mapper:
		return jsonfield.Marshal(data)
	case json.RawMessage:
		return data, nil
	case []string:
		if data == nil {
			// json.Marshal renders "null" for unallocated empty slices
			return []byte("[]"), nil
		}
	}
	return json.Marshal(v)
}

// Sprint returns the string representation of the data in one of the
// supported format (json, flat, human, ...).
func (t Renderer) Sprint() (string, error) {
	format, err := New(t.Format)
	if err != nil {
		return "", err
	}
	SetColor(t.Color)
	if t.Colorize == nil {
		t.Colorize = DefaultPaletteFunc()
	}
	if format == Human {
		if t.HumanRenderer != nil {
			return t.HumanRenderer(), nil
		}
		if r, ok := t.Data.(renderer); ok {
			return r.Render(), nil
		}
		format = JSON
	}
	b, err := ToJSON(t.Data)
	if err != nil {
		return "", errors.Wrap(err, "render")
	}
	switch format {
	case Flat:
		if color.NoColor {
			return SprintFlat(b, nil)
		}
		return SprintFlat(b, t.Colorize)
	case JSONLine:
		return string(b) + "\n", nil
	case YAML:
		return t.sprintYAML(b)
	default:
		return t.sprintJSON(b)
	}
}

func (t Renderer) sprintJSON(b []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", indent); err != nil {
		return "", errors.Wrap(err, "render json")
	}
	s := buf.String() + "\n"
	if color.NoColor {
		return s, nil
	}
	s = regexpJSONKey.ReplaceAllString(s, t.Colorize.Primary("$1"))
	s = regexpJSONHealthState.ReplaceAllStringFunc(s, func(m string) string {
		sub := regexpJSONHealthState.FindStringSubmatch(m)
		return sub[1] + t.Colorize.HealthState(sub[2]) + sub[3]
	})
	return s, nil
}

// sprintYAML converts the json document to yaml. The json document is
// loaded as a yaml node tree so the mapping keys keep their order.
func (t Renderer) sprintYAML(b []byte) (string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return "", errors.Wrap(err, "render yaml")
	}
	resetStyle(&node)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return "", errors.Wrap(err, "render yaml")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "render yaml")
	}
	var sep string
	if t.Stream {
		sep = "---\n"
	}
	if color.NoColor {
		return buf.String() + sep, nil
	}
	s, err := highlight.Highlight(&buf)
	if err != nil {
		return "", errors.Wrap(err, "render yaml")
	}
	return s + sep, nil
}

// resetStyle switches the flow style of the json syntax to the block
// style.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}

// Fprint writes the representation of the data to w.
func (t Renderer) Fprint(w io.Writer) error {
	s, err := t.Sprint()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}
