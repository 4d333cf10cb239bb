package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Languages returns the provider's languages. A successful answer is cached
// for the life of the service.
func (s *Service) Languages(ctx context.Context) (map[string]domain.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.langs != nil {
		return s.langs, nil
	}

	langs, err := s.provider.GetLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}
	s.langs = langs
	return langs, nil
}

// ResolveLanguage turns a code, an English name or a native name into a
// Language. Matching is case-insensitive. When the provider cannot be
// reached the input is accepted as a code.
func (s *Service) ResolveLanguage(ctx context.Context, input string) (domain.Language, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Language{}, domain.NewValidationError("language", "required")
	}

	langs, err := s.Languages(ctx)
	if errors.Is(err, domain.ErrProviderUnavailable) {
		s.log.InfoContext(ctx, "language list unavailable, using input as code",
			slog.String("language", input),
			slog.String("error", err.Error()),
		)
		return domain.Language{Code: input, Name: input, NativeName: input}, nil
	}
	if err != nil {
		return domain.Language{}, err
	}

	if l, ok := langs[input]; ok {
		return l, nil
	}
	for code, l := range langs {
		if strings.EqualFold(code, input) || strings.EqualFold(l.Name, input) || strings.EqualFold(l.NativeName, input) {
			return l, nil
		}
	}
	return domain.Language{}, domain.NewValidationError("language", fmt.Sprintf("%q is not available", input))
}
