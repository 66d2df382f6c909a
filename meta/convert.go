package meta

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrConvert is the sentinel wrapped by every ConvertError.
var ErrConvert = errors.New("conversion type mismatch")

// ConvertError reports a string converter invoked with a value of an
// unexpected runtime type.
type ConvertError struct {
	Expected string
	Actual   string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("converter expects %s, got %s", e.Expected, e.Actual)
}

func (e *ConvertError) Unwrap() error {
	return ErrConvert
}

// Default is the fallback converter: the value's own string
// representation.
func Default(v any) (string, error) {
	return fmt.Sprintf("%v", v), nil
}

// Typed wraps a converter over a concrete type. Invoking the result on
// a value that is not a T fails with a *ConvertError.
func Typed[T any](fn func(T) string) ConvertFunc {
	expected := reflect.TypeOf((*T)(nil)).Elem()
	return func(v any) (string, error) {
		tv, ok := v.(T)
		if !ok {
			return "", &ConvertError{
				Expected: expected.String(),
				Actual:   fmt.Sprintf("%T", v),
			}
		}
		return fn(tv), nil
	}
}
