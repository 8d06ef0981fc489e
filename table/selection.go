package table

// SetContextMenu sets the menu shown on a secondary click. Nil disables it.
func (t *Table[T]) SetContextMenu(m Menu) { t.menu = m }

// Selected returns the selected row, or -1.
func (t *Table[T]) Selected() int { return t.selected }

// Select selects row, or clears the selection when row is out of range.
func (t *Table[T]) Select(row int) {
	if row >= 0 && row < t.model.RowCount() {
		t.selected = row
		return
	}
	t.selected = -1
}

func (t *Table[T]) ClearSelection() { t.selected = -1 }

// SelectedRecord returns the selected element of the backing list.
func (t *Table[T]) SelectedRecord() (T, bool) {
	var zero T
	if t.selected < 0 || t.selected >= len(*t.list) {
		return zero, false
	}
	return (*t.list)[t.selected], true
}

// HandleRowActivated moves the selection to the clicked row and, for a
// secondary click on a row, shows the context menu.
func (t *Table[T]) HandleRowActivated(ev RowActivated) {
	defer t.recoverEvent("row")

	t.Select(ev.Row)
	if t.selected < 0 {
		return
	}
	if ev.Secondary && t.menu != nil {
		t.menu.Show(ev.At)
	}
}

// ExecuteActionOnSelection calls action with the selected record. Nothing
// happens when no valid row is selected. For value records the action gets
// a copy; call Reload after mutating pointer records.
func (t *Table[T]) ExecuteActionOnSelection(action func(T)) {
	rec, ok := t.SelectedRecord()
	if !ok || action == nil {
		return
	}
	action(rec)
}
