// Package table binds a caller-owned slice of structs to a grid model.
//
// Columns and editability come from the record type's exported fields and
// their `table` struct tags. Edits made in the grid are written back into
// the records, sorting reorders the slice itself, and the grid is kept in
// step so that grid row i always shows element i.
//
// A Table is not safe for concurrent use. It expects to be driven from the
// UI goroutine, and the caller must not change the slice from elsewhere
// while the table is live.
package table

import (
	"errors"
	"log"
	"reflect"
)

// Table keeps a *[]T and its grid model synchronized.
type Table[T any] struct {
	list   *[]T
	schema *Schema
	model  *Model
	logger *log.Logger

	readOnly bool
	selected int
	menu     Menu
	sortKey  SortKey
}

type options struct {
	logger      *log.Logger
	placeholder string
}

// Option configures a Table.
type Option func(*options)

// WithLogger sends the table's warnings to l instead of log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPlaceholder sets the header shown when the list is empty at
// construction.
func WithPlaceholder(label string) Option {
	return func(o *options) { o.placeholder = label }
}

// New derives the schema of T and materializes list into the grid. The table
// holds list itself: it writes fields of its elements and reorders them.
func New[T any](list *[]T, opts ...Option) (*Table[T], error) {
	if list == nil {
		return nil, errors.New("table: nil backing list")
	}
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	schema, err := DeriveSchema(reflect.TypeOf((*T)(nil)).Elem(), len(*list) == 0, o.placeholder, o.logger)
	if err != nil {
		return nil, err
	}

	t := &Table[T]{
		list:     list,
		schema:   schema,
		model:    NewModel(schema.Headers()),
		logger:   o.logger,
		selected: -1,
		sortKey:  SortKey{Column: -1},
	}
	t.Reload()
	return t, nil
}

func (t *Table[T]) Schema() *Schema { return t.schema }
func (t *Table[T]) Model() *Model   { return t.model }

// List returns the backing list handle the table was built with.
func (t *Table[T]) List() *[]T { return t.list }

// Reload rematerializes the grid from the backing list. Call it after
// changing the list outside of the table's own handlers.
func (t *Table[T]) Reload() {
	t.model.SetRows(Materialize(*t.list, t.schema.Columns, t.logger))
	if t.selected >= len(*t.list) {
		t.selected = -1
	}
}

// SetReadOnly overrides per-column editability for every cell.
func (t *Table[T]) SetReadOnly(readOnly bool) { t.readOnly = readOnly }

func (t *Table[T]) ReadOnly() bool { return t.readOnly }

// IsCellEditable reports whether the widget may start editing (row, col).
func (t *Table[T]) IsCellEditable(row, col int) bool {
	if t.readOnly {
		return false
	}
	if row < 0 || row >= t.model.RowCount() {
		return false
	}
	c, ok := t.schema.Field(col)
	return ok && c.Editable
}

// Dispatch routes a widget event to its handler.
func (t *Table[T]) Dispatch(ev Event) {
	switch e := ev.(type) {
	case EditCommitted:
		t.HandleEdit(e)
	case SortRequested:
		t.HandleSort(e)
	case RowActivated:
		t.HandleRowActivated(e)
	}
}

// recoverEvent keeps a panicking reflection call inside the handler.
func (t *Table[T]) recoverEvent(name string) {
	if r := recover(); r != nil {
		t.logger.Printf("warning: %s handler: recovered: %v", name, r)
	}
}
