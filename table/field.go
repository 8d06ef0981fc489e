package table

import (
	"fmt"
	"reflect"
)

// structValue dereferences a record down to its struct value.
func structValue(rec reflect.Value) (reflect.Value, error) {
	for rec.Kind() == reflect.Pointer || rec.Kind() == reflect.Interface {
		if rec.IsNil() {
			return reflect.Value{}, ErrNilRecord
		}
		rec = rec.Elem()
	}
	if rec.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotStruct, rec.Type())
	}
	return rec, nil
}

func fieldValue(rec reflect.Value, col Column) (reflect.Value, error) {
	sv, err := structValue(rec)
	if err != nil {
		return reflect.Value{}, err
	}
	// nil embedded pointers surface as an error instead of a panic
	return sv.FieldByIndexErr(col.Index)
}

// readField returns the current value of col on rec.
func readField(rec reflect.Value, col Column) (any, error) {
	fv, err := fieldValue(rec, col)
	if err != nil {
		return nil, err
	}
	if !fv.CanInterface() {
		return nil, fmt.Errorf("field %s is not accessible", col.Name)
	}
	return fv.Interface(), nil
}

// writeField coerces value into col's type and stores it on rec. The field
// is left untouched when coercion fails.
func writeField(rec reflect.Value, col Column, value any) error {
	fv, err := fieldValue(rec, col)
	if err != nil {
		return err
	}
	if !fv.CanSet() {
		return fmt.Errorf("field %s is not settable", col.Name)
	}
	return assign(fv, value)
}
