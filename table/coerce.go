package table

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// assign converts value to dst's type and sets it. Every branch converts
// first and sets last so a failed conversion leaves dst as it was.
func assign(dst reflect.Value, value any) error {
	t := dst.Type()
	if value == nil {
		switch dst.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			dst.Set(reflect.Zero(t))
			return nil
		}
		return fmt.Errorf("%w for %s", ErrNilValue, t)
	}

	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(t) {
		dst.Set(src)
		return nil
	}

	switch t {
	case timeType:
		v, err := cast.ToTimeE(value)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(v))
		return nil
	case durationType:
		v, err := cast.ToDurationE(value)
		if err != nil {
			return err
		}
		dst.SetInt(int64(v))
		return nil
	}

	if s, ok := value.(string); ok && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		tmp := reflect.New(t)
		if err := tmp.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return err
		}
		dst.Set(tmp.Elem())
		return nil
	}

	switch dst.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		dst.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(value)
		if err != nil {
			return err
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("%w: %d into %s", ErrOverflow, n, t)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := toUint64(value)
		if err != nil {
			return err
		}
		if dst.OverflowUint(n) {
			return fmt.Errorf("%w: %d into %s", ErrOverflow, n, t)
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return err
		}
		if dst.OverflowFloat(f) {
			return fmt.Errorf("%w: %g into %s", ErrOverflow, f, t)
		}
		dst.SetFloat(f)
	case reflect.Slice:
		if t.Elem().Kind() != reflect.String {
			return fmt.Errorf("%w: %T into %s", ErrUnsupportedType, value, t)
		}
		items, err := toStrings(value)
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(t, len(items), len(items))
		for i, s := range items {
			out.Index(i).SetString(s)
		}
		dst.Set(out)
	case reflect.Pointer:
		tmp := reflect.New(t.Elem())
		if err := assign(tmp.Elem(), value); err != nil {
			return err
		}
		dst.Set(tmp)
	default:
		return fmt.Errorf("%w: %T into %s", ErrUnsupportedType, value, t)
	}
	return nil
}

// toInt64 reads strings as base 10 so that "010" is ten, not eight.
// Blank text is zero.
func toInt64(value any) (int64, error) {
	s, ok := value.(string)
	if !ok {
		return cast.ToInt64E(value)
	}
	if s = strings.TrimSpace(s); s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func toUint64(value any) (uint64, error) {
	s, ok := value.(string)
	if !ok {
		return cast.ToUint64E(value)
	}
	if s = strings.TrimSpace(s); s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// toStrings splits edited text on commas, matching how Text joins string
// slices for display.
func toStrings(value any) ([]string, error) {
	s, ok := value.(string)
	if !ok {
		return cast.ToStringSliceE(value)
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}
