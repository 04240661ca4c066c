package dataset

import (
	"errors"
	"fmt"
)

// ErrColumnMissing is returned when an operation names a column the table
// does not have. Callers treat it as fatal; there is no column pre-check.
var ErrColumnMissing = errors.New("column not found")

// Table is an ordered collection of rows sharing a single header. Rows are
// kept aligned to Columns: every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// New creates a table with the given header and no rows.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// AppendRow adds a row, padding or truncating it to the header width.
func (t *Table) AppendRow(cells []Value) {
	row := make([]Value, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of name in the header.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnMissing, name)
}

// HasColumn reports whether name is present in the header.
func (t *Table) HasColumn(name string) bool {
	_, err := t.ColumnIndex(name)
	return err == nil
}

// Column returns the cells of the named column in row order.
func (t *Table) Column(name string) ([]Value, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Transform replaces every cell of the named column with fn(cell).
func (t *Table) Transform(name string, fn func(Value) Value) error {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return err
	}
	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}
	return nil
}

// AddColumn appends a derived column whose cell for each row is fn(row view).
// Derived columns always go to the end of the header, preserving the order
// of the original columns.
func (t *Table) AddColumn(name string, fn func(r RowView) Value) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		cell := fn(RowView{table: t, row: i})
		t.Rows[i] = append(t.Rows[i], cell)
	}
}

// RowView is a read-only view of one row, used by derived-column functions.
type RowView struct {
	table *Table
	row   int
}

// Get returns the named cell of the viewed row. Unknown columns yield an
// empty cell; derivation functions never fail on structure.
func (r RowView) Get(name string) Value {
	idx, err := r.table.ColumnIndex(name)
	if err != nil || idx >= len(r.table.Rows[r.row]) {
		return Empty()
	}
	return r.table.Rows[r.row][idx]
}
