package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidName is the sentinel wrapped by every InvalidNameError.
var ErrInvalidName = errors.New("invalid name")

// InvalidNameError reports a name or attribute key that does not match
// ^[A-Za-z][A-Za-z0-9]*$.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: must start with a letter followed by letters or digits", e.Name)
}

func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// ValidName reports whether s matches ^[A-Za-z][A-Za-z0-9]*$.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func checkName(s string) error {
	if !ValidName(s) {
		return &InvalidNameError{Name: s}
	}
	return nil
}
