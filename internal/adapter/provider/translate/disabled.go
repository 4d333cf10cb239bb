// Package translate holds the provider used when word lookup is turned off.
package translate

import (
	"context"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Disabled is a translation provider that never reaches a service.
// Every call reports domain.ErrProviderUnavailable.
type Disabled struct{}

// NewDisabled creates a Disabled provider.
func NewDisabled() *Disabled { return &Disabled{} }

// GetLanguages always fails with domain.ErrProviderUnavailable.
func (Disabled) GetLanguages(context.Context) (map[string]domain.Language, error) {
	return nil, domain.ErrProviderUnavailable
}

// Translate always fails with domain.ErrProviderUnavailable.
func (Disabled) Translate(context.Context, string, string, string) (string, error) {
	return "", domain.ErrProviderUnavailable
}

// DetectLanguage always fails with domain.ErrProviderUnavailable.
func (Disabled) DetectLanguage(context.Context, string) (domain.Detection, error) {
	return domain.Detection{}, domain.ErrProviderUnavailable
}
