package table

import "reflect"

// CommitEdit is how a widget hands over an edited value. Cells that are not
// editable are refused and nothing is attempted. Otherwise the value is
// stored in the grid and an EditCommitted is dispatched.
func (t *Table[T]) CommitEdit(row, col int, value any) bool {
	if !t.IsCellEditable(row, col) {
		return false
	}
	if err := t.model.SetValueAt(value, row, col); err != nil {
		return false
	}
	t.Dispatch(EditCommitted{Row: row, Col: col, Value: value})
	return true
}

// HandleEdit writes grid values back into the record at ev.Row. Each field
// is committed or reverted on its own: a value that cannot be stored is
// logged and the grid cell is reset to the field's current value.
func (t *Table[T]) HandleEdit(ev EditCommitted) {
	defer t.recoverEvent("edit")

	if ev.Row < 0 || ev.Row >= len(*t.list) {
		return
	}
	rec := reflect.ValueOf(*t.list).Index(ev.Row)

	var targets []Column
	if ev.Col == AllColumns {
		targets = t.schema.Columns
	} else {
		c, ok := t.schema.Field(ev.Col)
		if !ok {
			return
		}
		targets = []Column{c}
	}

	for i, col := range targets {
		// a full-row update reads each field from its position in the set
		gridCol := ev.Col
		if ev.Col == AllColumns {
			gridCol = i
		}

		value, _ := t.model.ValueAt(ev.Row, gridCol)
		if err := writeField(rec, col, value); err != nil {
			t.logger.Printf("warning: an error occurred during the data model update: %v",
				&FieldAccessError{Op: "write", Field: col.Name, Row: ev.Row, Err: err})
			t.restore(rec, ev.Row, gridCol, col)
			continue
		}
		// show what the field now holds, e.g. 42 rather than "42"
		t.restore(rec, ev.Row, gridCol, col)
	}
}

// restore puts the field's current value back into the grid cell.
func (t *Table[T]) restore(rec reflect.Value, row, gridCol int, col Column) {
	cur, err := readField(rec, col)
	if err != nil {
		t.logger.Printf("warning: %v", &FieldAccessError{Op: "read", Field: col.Name, Row: row, Err: err})
		return
	}
	if err := t.model.SetValueAt(cur, row, gridCol); err != nil {
		t.logger.Printf("warning: restore %s at row %d: %v", col.Name, row, err)
	}
}
