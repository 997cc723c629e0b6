// Package apperr defines the error taxonomy the handlers translate into
// HTTP status codes: validation failures, missing records and unique-key
// conflicts. Anything else is treated as a store failure.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound signals that the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports every field of an incoming entity that
// violates its constraints.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// NewValidation builds a ValidationError from a field → reason map.
func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ConflictError reports a collision on a unique column.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict builds a ConflictError naming the colliding key.
func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err means the record is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsValidation extracts a ValidationError if err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsConflict extracts a ConflictError if err carries one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
