package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of aligned columns. The header is written lazily so a
// table that never receives a row produces no output at all.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	rows    int
}

// NewTable prepares a table with the given column headers. Call Row for
// each entry and Flush exactly once at the end.
func NewTable(out io.Writer, headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(out, 0, 4, 2, ' ', 0),
		headers: headers,
	}
}

// Row appends one row. Values are formatted with fmt.Sprint; the count
// should match the number of headers.
func (t *Table) Row(values ...any) {
	if t.rows == 0 {
		_, _ = fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
	}
	t.rows++

	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	if t.rows == 0 {
		return nil
	}
	return t.w.Flush()
}
