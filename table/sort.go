package table

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// SortKey returns the key of the last sort request; Column is -1 before
// any request.
func (t *Table[T]) SortKey() SortKey { return t.sortKey }

// ToggleSort advances col through ascending, descending and unsorted, the
// way a header click does, and dispatches the resulting request. Columns
// outside the schema, including the placeholder, keep the current key.
func (t *Table[T]) ToggleSort(col int) SortKey {
	if _, ok := t.schema.Field(col); !ok {
		return t.sortKey
	}
	dir := Ascending
	if t.sortKey.Column == col {
		switch t.sortKey.Direction {
		case Ascending:
			dir = Descending
		case Descending:
			dir = Unsorted
		}
	}
	key := SortKey{Column: col, Direction: dir}
	t.Dispatch(SortRequested{Keys: []SortKey{key}})
	return key
}

// HandleSort reorders the backing list by the first key only, comparing
// the text of the key column's field. The sort is stable. Records whose
// field cannot be read compare equal to everything. Unsorted keys leave the
// list as is. Columns outside the schema, including the placeholder, are
// ignored and do not change SortKey.
func (t *Table[T]) HandleSort(ev SortRequested) {
	defer t.recoverEvent("sort")

	if len(ev.Keys) == 0 {
		return
	}
	key := ev.Keys[0]
	col, ok := t.schema.Field(key.Column)
	if !ok {
		return
	}
	t.sortKey = key
	if key.Direction == Unsorted {
		return
	}

	list := *t.list
	keys := t.sortTexts(list, col)
	order := make([]int, len(list))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ka, kb := keys[a], keys[b]
		if ka == nil || kb == nil {
			return 0
		}
		if key.Direction == Descending {
			return strings.Compare(*kb, *ka)
		}
		return strings.Compare(*ka, *kb)
	})

	// the selection follows its record
	prev := t.selected
	sorted := make([]T, len(list))
	for i, j := range order {
		sorted[i] = list[j]
		if j == prev {
			t.selected = i
		}
	}
	copy(list, sorted)

	t.Reload()
}

// sortTexts reads the comparison text of col for every record; nil marks a
// record whose value could not be read.
func (t *Table[T]) sortTexts(list []T, col Column) []*string {
	texts := make([]*string, len(list))
	rv := reflect.ValueOf(list)
	for i := range list {
		v, err := readField(rv.Index(i), col)
		if err == nil && isNil(v) {
			err = fmt.Errorf("%w in %s", ErrNilValue, col.Name)
		}
		if err != nil {
			t.logger.Printf("warning: sort: %v", &FieldAccessError{Op: "read", Field: col.Name, Row: i, Err: err})
			continue
		}
		s := Text(v)
		texts[i] = &s
	}
	return texts
}
