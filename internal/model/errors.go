package model

import (
	"errors"
	"fmt"
)

// ValidationError reports user input that a store refused. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports a persisted or imported JSON value that could not be
// decoded.
type FormatError struct {
	Key string
	Err error
}

func (e *FormatError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("malformed json: %v", e.Err)
	}
	return fmt.Sprintf("malformed json in %s: %v", e.Key, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Invalid is shorthand for returning a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFormat reports whether err is or wraps a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
