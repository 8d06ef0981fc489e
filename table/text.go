package table

import (
	"fmt"
	"reflect"
	"strings"
)

// Text renders a cell value the way the grid shows it and the way sorting
// compares it. Nil renders as the empty string.
func Text(v any) string {
	if isNil(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case []string:
		return strings.Join(x, ", ")
	case fmt.Stringer:
		return x.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return Text(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// isNil reports nil values, including typed nil pointers.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
