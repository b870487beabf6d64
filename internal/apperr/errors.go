package apperr

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized covers missing, malformed, expired or badly signed credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateLimited is returned when a caller exceeded its request budget.
var ErrRateLimited = errors.New("too many requests")

// ValidationError carries per-field validation messages. It matches ErrInvalid with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Field returns a ValidationError for a single field.
func Field(name, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{name: msg}}
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrInvalid as the category of every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// FieldsOf extracts field details from err, if it carries any.
func FieldsOf(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) && ve != nil {
		return ve.Fields
	}
	return nil
}
