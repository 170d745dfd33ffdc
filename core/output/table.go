package output

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	tabwriter "github.com/juju/ansiterm"
)

var bold = color.New(color.Bold).SprintFunc()

// Table is a human format renderer of tabular data. Cells may contain
// ansi color sequences.
type Table struct {
	Header []string
	Rows   [][]string
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render returns the aligned table, with a bold header.
func (t Table) Render() string {
	var buf bytes.Buffer
	w := tabwriter.NewTabWriter(&buf, 1, 1, 2, ' ', 0)
	if len(t.Header) > 0 {
		header := make([]string, len(t.Header))
		for i, s := range t.Header {
			header[i] = bold(s)
		}
		_, _ = w.Write([]byte(strings.Join(header, "\t") + "\n"))
	}
	for _, row := range t.Rows {
		_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	_ = w.Flush()
	return buf.String()
}
