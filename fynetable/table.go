// Package fynetable shows a slice of structs in a Fyne table widget whose
// columns, editability and sorting come from package table.
package fynetable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/plusk0/recordtable/table"
)

// Table is a widget.Table bound to a caller-owned *[]T.
//
// Double-click an editable cell to edit it, press Return to commit. Click a
// header to cycle its sort. Right-click a row for the context menu.
type Table[T any] struct {
	widget.Table

	core *table.Table[T]

	// OnChanged runs after an edit or sort has touched the backing list.
	OnChanged func()
}

// New builds the widget over list. placeholder is the header shown when
// list is empty.
func New[T any](list *[]T, placeholder string, opts ...table.Option) (*Table[T], error) {
	opts = append([]table.Option{table.WithPlaceholder(placeholder)}, opts...)
	core, err := table.New(list, opts...)
	if err != nil {
		return nil, err
	}

	t := &Table[T]{core: core}
	t.Length = t.length
	t.CreateCell = t.createCell
	t.UpdateCell = t.updateCell
	t.ShowHeaderRow = true
	t.CreateHeader = t.createHeader
	t.UpdateHeader = t.updateHeader
	t.OnSelected = func(id widget.TableCellID) {
		t.activate(id.Row, false, fyne.Position{})
	}
	t.ExtendBaseWidget(t)
	return t, nil
}

// Core exposes the synchronizer behind the widget.
func (t *Table[T]) Core() *table.Table[T] { return t.core }

// SetReadOnly makes every cell non-editable when true.
func (t *Table[T]) SetReadOnly(readOnly bool) {
	t.core.SetReadOnly(readOnly)
	t.Refresh()
}

func (t *Table[T]) ReadOnly() bool { return t.core.ReadOnly() }

// SetContextMenu sets the menu shown on right-click; nil removes it.
func (t *Table[T]) SetContextMenu(menu *fyne.Menu) {
	if menu == nil {
		t.core.SetContextMenu(nil)
		return
	}
	t.core.SetContextMenu(popupMenu{menu: menu, owner: t})
}

// ExecuteActionOnSelection calls action with the selected record, if any.
func (t *Table[T]) ExecuteActionOnSelection(action func(T)) {
	t.core.ExecuteActionOnSelection(action)
}

// Reload redraws the grid from the backing list.
func (t *Table[T]) Reload() {
	t.core.Reload()
	t.Refresh()
}

func (t *Table[T]) length() (int, int) {
	m := t.core.Model()
	return m.RowCount(), m.ColumnCount()
}

func (t *Table[T]) createCell() fyne.CanvasObject {
	c := newCell()
	c.onTapped = func(id widget.TableCellID, secondary bool, at fyne.Position) {
		t.activate(id.Row, secondary, at)
	}
	c.canEdit = func(id widget.TableCellID) bool {
		return t.core.IsCellEditable(id.Row, id.Col)
	}
	c.onSubmit = t.commit
	return c
}

func (t *Table[T]) updateCell(id widget.TableCellID, o fyne.CanvasObject) {
	o.(*cell).show(id, t.core.Model().Text(id.Row, id.Col), id.Row == t.core.Selected())
}

func (t *Table[T]) createHeader() fyne.CanvasObject {
	return widget.NewButton("", nil)
}

func (t *Table[T]) updateHeader(id widget.TableCellID, o fyne.CanvasObject) {
	b := o.(*widget.Button)
	col := id.Col
	b.SetText(t.headerText(col))
	b.OnTapped = func() { t.sortColumn(col) }
}

// headerText is the column label with an arrow for the active sort.
func (t *Table[T]) headerText(col int) string {
	label := t.core.Model().Header(col)
	key := t.core.SortKey()
	if key.Column != col {
		return label
	}
	switch key.Direction {
	case table.Ascending:
		return label + " ▲"
	case table.Descending:
		return label + " ▼"
	}
	return label
}

func (t *Table[T]) sortColumn(col int) {
	t.core.ToggleSort(col)
	t.Refresh()
	t.changed()
}

func (t *Table[T]) commit(id widget.TableCellID, text string) {
	if t.core.CommitEdit(id.Row, id.Col, text) {
		t.changed()
	}
	// shows the stored value, or the old one after a revert
	t.Refresh()
}

func (t *Table[T]) activate(row int, secondary bool, at fyne.Position) {
	t.core.Dispatch(table.RowActivated{
		Row:       row,
		Secondary: secondary,
		At:        table.Point{X: at.X, Y: at.Y},
	})
	t.Refresh()
}

func (t *Table[T]) changed() {
	if t.OnChanged != nil {
		t.OnChanged()
	}
}
