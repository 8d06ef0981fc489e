package table

import (
	"fmt"
	"log"
	"reflect"
)

// Cell is one grid value. Present is false when the field could not be read.
type Cell struct {
	Value   any
	Present bool
}

// Model is the in-memory row/column store a widget renders from.
type Model struct {
	headers []string
	rows    [][]Cell
}

// NewModel returns an empty model with the given header labels.
func NewModel(headers []string) *Model {
	return &Model{headers: headers}
}

func (m *Model) RowCount() int    { return len(m.rows) }
func (m *Model) ColumnCount() int { return len(m.headers) }

// Header returns the label of col, or "" when out of range.
func (m *Model) Header(col int) string {
	if col < 0 || col >= len(m.headers) {
		return ""
	}
	return m.headers[col]
}

// ValueAt returns the cell value and whether it is present.
func (m *Model) ValueAt(row, col int) (any, bool) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return nil, false
	}
	c := m.rows[row][col]
	return c.Value, c.Present
}

// Text returns the display text of a cell; absent cells are empty.
func (m *Model) Text(row, col int) string {
	v, ok := m.ValueAt(row, col)
	if !ok {
		return ""
	}
	return Text(v)
}

// SetValueAt stores value without notifying anyone.
func (m *Model) SetValueAt(value any, row, col int) error {
	if row < 0 || row >= len(m.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 || col >= len(m.headers) {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	for len(m.rows[row]) <= col {
		m.rows[row] = append(m.rows[row], Cell{})
	}
	m.rows[row][col] = Cell{Value: value, Present: true}
	return nil
}

// SetRows replaces the whole grid.
func (m *Model) SetRows(rows [][]Cell) { m.rows = rows }

// Materialize reads every column of every record into grid rows. Row order
// is list order and cell order is column order. A field that cannot be read
// is logged and its cell left absent; the row is kept.
func Materialize[T any](records []T, cols []Column, logger *log.Logger) [][]Cell {
	if logger == nil {
		logger = log.Default()
	}
	rows := make([][]Cell, len(records))
	list := reflect.ValueOf(records)
	for i := range records {
		rec := list.Index(i)
		row := make([]Cell, len(cols))
		for c, col := range cols {
			v, err := readField(rec, col)
			if err != nil {
				logger.Printf("warning: %v", &FieldAccessError{Op: "read", Field: col.Name, Row: i, Err: err})
				continue
			}
			row[c] = Cell{Value: v, Present: true}
		}
		rows[i] = row
	}
	return rows
}
