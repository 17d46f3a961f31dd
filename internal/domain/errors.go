package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotAuthenticated   = errors.New("authentication credentials were not provided")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInactiveUser       = errors.New("user inactive or deleted")
	ErrThrottled          = errors.New("request was throttled")

	// ErrIntegrity is returned by repositories when a write violates a
	// database constraint such as the unique username index.
	ErrIntegrity = errors.New("integrity constraint violated")
)

// ValidationError carries field-level messages keyed by the external field
// name. The key "non_field_errors" holds messages not tied to one field.
type ValidationError struct {
	Fields map[string][]string
}

const NonFieldErrors = "non_field_errors"

func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{Fields: make(map[string][]string)}
	e.Add(field, message)
	return e
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
