package converter

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing field")

// MissingFieldError is returned when a decoded object lacks a required key.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Entity, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
