package table

import (
	"errors"
	"fmt"
)

var (
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrNotStruct        = errors.New("record type is not a struct")
	ErrNilRecord        = errors.New("nil record")
	ErrNilValue         = errors.New("nil value")
	ErrUnsupportedType  = errors.New("unsupported field type")
	ErrOverflow         = errors.New("value overflows field")
)

// FieldAccessError reports a failed read or write of a record field.
// It never leaves the table: handlers log it and correct the grid.
type FieldAccessError struct {
	Op    string // "read" or "write"
	Field string
	Row   int
	Err   error
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("%s field %s at row %d: %v", e.Op, e.Field, e.Row, e.Err)
}

func (e *FieldAccessError) Unwrap() error { return e.Err }
