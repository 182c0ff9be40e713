// Package tabular reads and writes delimited text tables. All cells are
// kept as strings; column order and header names are preserved exactly.
package tabular

import (
	"fmt"
	"strings"
)

// Table is an in-memory delimited table with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the index of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, col := range t.Header {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found (columns: %s)", name, strings.Join(t.Header, ", "))
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// ParseError represents an error during table parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("table parse error at line %d: %s", e.Line, e.Message)
}
