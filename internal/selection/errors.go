// Package selection chooses which skills and portfolio items appear on a tailored resume.
package selection

import "fmt"

// Error represents an invalid selection request
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
