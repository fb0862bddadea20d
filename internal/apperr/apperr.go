// Package apperr holds the error taxonomy shared by the service and handler layers.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// Error is a business rule failure raised by a service.
type Error struct {
	Kind    error
	Field   string // optional, the offending input field
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidArgument reports malformed or out of range input on field.
func InvalidArgument(field, format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidArgument, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a business rule violation such as insufficient stock or a taken email.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}
