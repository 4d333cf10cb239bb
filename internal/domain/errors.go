package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by stores, services and transports. Wrap them with
// fmt.Errorf("...: %w") and match with errors.Is.
var (
	// ErrNotFound means a named headword or language does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is reported by stores on a unique key clash.
	ErrAlreadyExists = errors.New("already exists")

	ErrValidation = errors.New("validation error")

	// ErrNotInitialized is returned when an operation needs an active
	// language pair and none has been opened.
	ErrNotInitialized = errors.New("not initialized")

	// ErrNoData means the store holds nothing for the requested pair yet.
	ErrNoData = errors.New("no data")

	// ErrCorruptData means durable data exists but cannot be decoded.
	ErrCorruptData = errors.New("corrupt data")

	// ErrProviderUnavailable is returned by translation providers on
	// network, auth or decoding failures. Callers proceed without lookup.
	ErrProviderUnavailable = errors.New("translation provider unavailable")
)

// FieldError names one rejected input, e.g. {"pairs[2].key", "required"}.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected input of one call so a caller
// can report them all at once.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("%s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
