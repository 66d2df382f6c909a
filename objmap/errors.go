package objmap

import "fmt"

// MapError represents an error during mapping.
type MapError struct {
	FieldPath string // field path (e.g., "person.grades[1]")
	Message   string
	Err       error
}

func (e *MapError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("map error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("map error: %s", msg)
}

func (e *MapError) Unwrap() error {
	return e.Err
}
