package study

import (
	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Options decides which entries are due and how they are shown.
type Options struct {
	MinCorrect int
	MinAgeDays int
	WordOrder  domain.WordOrder
	Part       domain.PartFilter
}

// Validate checks all fields and collects all errors.
func (o Options) Validate() error {
	var errs []domain.FieldError

	if o.MinCorrect < 0 {
		errs = append(errs, domain.FieldError{Field: "min_correct", Message: "must be >= 0"})
	}
	if o.MinAgeDays < 0 {
		errs = append(errs, domain.FieldError{Field: "min_age_days", Message: "must be >= 0"})
	}
	if !o.WordOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "word_order", Message: "must be from-to or to-from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
