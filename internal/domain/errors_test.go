package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("key", "required")

	if got := err.Error(); got != "key: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "pairs[0].key", Message: "required"},
		{Field: "pairs[0].values", Message: "at least one required"},
	})

	if got := err.Error(); got != "pairs[0].key: required; pairs[0].values: at least one required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_Empty(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors(nil)
	if err.Error() != "validation failed" || !errors.Is(err, ErrValidation) {
		t.Fatalf("unexpected empty validation error: %q", err.Error())
	}
}

func TestValidationError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("merge: %w", NewValidationError("key", "reserved"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should find *ValidationError")
	}
	if ve.Errors[0].Field != "key" {
		t.Errorf("field = %q, want key", ve.Errors[0].Field)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrNotInitialized, ErrNoData, ErrCorruptData, ErrProviderUnavailable,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
