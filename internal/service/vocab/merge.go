package vocab

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Merge folds pairs into the set for pair and saves the result once.
// Invalid input is rejected before anything is loaded or written.
func (s *Service) Merge(ctx context.Context, pair domain.LangPair, pairs []MergePair, opts MergeOptions) (MergeResult, error) {
	clean, err := validatePairs(pairs)
	if err != nil {
		return MergeResult{}, err
	}

	set, err := s.Load(ctx, pair)
	if err != nil {
		return MergeResult{}, err
	}

	var res MergeResult
	for _, p := range clean {
		if e, ok := set.Entry(p.Key); ok {
			for _, v := range p.Values {
				e.AddTranslation(v)
			}
			e.Part = p.Part
			res.Updated = append(res.Updated, p.Key)
			continue
		}

		if opts.Update {
			res.Removed = append(res.Removed, removeByTranslations(set, p.Values)...)
		}
		set.Put(p.Key, domain.Entry{Translations: p.Values, Part: p.Part})
		res.Added = append(res.Added, p.Key)
	}

	if err := s.Save(ctx, pair, set); err != nil {
		return MergeResult{}, err
	}

	s.log.InfoContext(ctx, "vocab merged",
		slog.String("pair", pair.String()),
		slog.Bool("force", opts.Force),
		slog.Bool("update", opts.Update),
		slog.Int("added", len(res.Added)),
		slog.Int("updated", len(res.Updated)),
		slog.Int("removed", len(res.Removed)),
	)
	return res, nil
}

// removeByTranslations deletes every entry whose translation list equals
// values exactly and returns the removed headwords.
func removeByTranslations(set *domain.VocabularySet, values []string) []string {
	var removed []string
	for _, h := range set.Headwords() {
		e, _ := set.Entry(h)
		if slices.Equal(e.Translations, values) {
			set.Delete(h)
			removed = append(removed, h)
		}
	}
	return removed
}

// Delete removes the given headwords from the set for pair. Missing and
// reserved headwords are ignored. The set is saved once, and only when
// something was removed.
func (s *Service) Delete(ctx context.Context, pair domain.LangPair, headwords []string) ([]string, error) {
	set, err := s.Load(ctx, pair)
	if err != nil {
		return nil, err
	}

	deleted := []string{}
	for _, h := range headwords {
		h = strings.TrimSpace(h)
		if set.Delete(h) {
			deleted = append(deleted, h)
		}
	}
	if len(deleted) == 0 {
		return deleted, nil
	}

	if err := s.Save(ctx, pair, set); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vocab entries deleted",
		slog.String("pair", pair.String()),
		slog.Any("headwords", deleted),
	)
	return deleted, nil
}
