package table

import (
	"fmt"
	"log"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// tagKey is the struct tag read for column metadata, e.g.
//
//	Name string `table:"order=1,label=Full name"`
//	Age  int    `table:"order=2,editable=false"`
//
// Options are split on commas, so a label cannot contain one.
const tagKey = "table"

// Column describes one displayable field of a record type.
type Column struct {
	Name     string // Go field name
	Label    string // header text
	Rank     int
	Ranked   bool
	Editable bool
	Index    []int // reflect field index, may walk embedded structs
	Type     reflect.Type
}

// Schema is the fixed, ordered column layout of a table. It is derived once
// and every later read, write and sort resolves columns through it.
type Schema struct {
	Columns     []Column
	Placeholder string
	empty       bool
}

// DeriveSchema builds the schema for recordType, a struct or pointer to
// struct. When empty is true the schema collapses to a single non-data
// column labelled with placeholder.
func DeriveSchema(recordType reflect.Type, empty bool, placeholder string, logger *log.Logger) (*Schema, error) {
	st, err := recordStruct(recordType)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	if empty {
		return &Schema{Placeholder: placeholder, empty: true}, nil
	}
	return &Schema{Columns: DeriveColumns(st, logger), Placeholder: placeholder}, nil
}

// DeriveColumns lists the exported fields of st in column order: ranked
// fields by ascending rank, then unranked fields by name.
func DeriveColumns(st reflect.Type, logger *log.Logger) []Column {
	var cols []Column
	for _, f := range reflect.VisibleFields(st) {
		// embedded structs contribute their promoted fields, not a column
		if !f.IsExported() || f.Anonymous {
			continue
		}
		col := Column{
			Name:     f.Name,
			Label:    f.Name,
			Editable: true,
			Index:    f.Index,
			Type:     f.Type,
		}
		parseTag(&col, f.Tag.Get(tagKey), logger)
		cols = append(cols, col)
	}
	// equal ranks keep declaration order
	sort.SliceStable(cols, func(i, j int) bool {
		return columnLess(cols[i], cols[j])
	})
	return cols
}

func columnLess(a, b Column) bool {
	switch {
	case a.Ranked && b.Ranked:
		return a.Rank < b.Rank
	case a.Ranked:
		return true
	case b.Ranked:
		return false
	}
	return a.Name < b.Name
}

func parseTag(col *Column, tag string, logger *log.Logger) {
	if tag == "" {
		return
	}
	for _, opt := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(strings.TrimSpace(opt), "=")
		switch key {
		case "":
		case "order":
			rank, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				logger.Printf("warning: field %s: ignoring order %q: %v", col.Name, val, err)
				continue
			}
			col.Rank, col.Ranked = rank, true
		case "label":
			if val != "" {
				col.Label = val
			}
		case "editable":
			enabled, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				logger.Printf("warning: field %s: ignoring editable %q: %v", col.Name, val, err)
				continue
			}
			if !enabled {
				col.Editable = false
			}
		case "readonly":
			col.Editable = false
		default:
			logger.Printf("warning: field %s: unknown table option %q", col.Name, key)
		}
	}
}

// recordStruct returns the struct type behind a record type.
func recordStruct(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNotStruct
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	return t, nil
}

// IsPlaceholder reports whether the schema is the single empty-list column.
func (s *Schema) IsPlaceholder() bool { return s.empty }

// Width is the number of grid columns, counting the placeholder column.
func (s *Schema) Width() int {
	if s.empty {
		return 1
	}
	return len(s.Columns)
}

// Headers returns the header labels in column order.
func (s *Schema) Headers() []string {
	if s.empty {
		return []string{s.Placeholder}
	}
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Label
	}
	return headers
}

// Field returns the data column at col. The placeholder column and
// out-of-range indices report false.
func (s *Schema) Field(col int) (Column, bool) {
	if s.empty || col < 0 || col >= len(s.Columns) {
		return Column{}, false
	}
	return s.Columns[col], true
}

// NonEditable returns the indices of columns whose tags disable editing.
func (s *Schema) NonEditable() []int {
	if s.empty {
		return []int{0}
	}
	var out []int
	for i, c := range s.Columns {
		if !c.Editable {
			out = append(out, i)
		}
	}
	return out
}
