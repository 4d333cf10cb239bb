package impex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// ExportJSON writes the full set, meta included, in its persisted shape.
func (s *Service) ExportJSON(ctx context.Context, pair domain.LangPair, w io.Writer) error {
	set, err := s.vocab.Load(ctx, pair)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ImportJSON replaces the pair's set with the document read from r. The
// document's meta must describe the same pair and every entry must be valid;
// otherwise nothing is written. The replaced state ends up in the backup
// location.
func (s *Service) ImportJSON(ctx context.Context, pair domain.LangPair, r io.Reader) (int, error) {
	if err := pair.Validate(); err != nil {
		return 0, err
	}

	set := &domain.VocabularySet{}
	if err := json.NewDecoder(r).Decode(set); err != nil {
		return 0, domain.NewValidationError("document", "invalid json: "+err.Error())
	}
	if set.Meta.Pair() != pair {
		return 0, domain.NewValidationError("meta", fmt.Sprintf("document is for %s, expected %s", set.Meta.Pair(), pair))
	}
	if err := set.Validate(); err != nil {
		return 0, err
	}

	if err := s.vocab.Replace(ctx, pair, set); err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "json imported", slog.String("pair", pair.String()), slog.Int("entries", set.Len()))
	return set.Len(), nil
}
