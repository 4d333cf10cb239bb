package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Load returns the set for pair. A pair with no data yet and a pair whose
// data cannot be decoded both yield an empty set carrying a meta built from
// the pair; the second case is logged at WARN. A stored document with a
// missing or foreign meta keeps its entries and gets the pair's meta.
func (s *Service) Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}

	set, err := s.store.Load(ctx, pair)
	switch {
	case err == nil:
		s.repairMeta(ctx, pair, set)
		return set, nil
	case errors.Is(err, domain.ErrNoData):
		return domain.NewVocabularySet(domain.NewMeta(pair, "", "")), nil
	case errors.Is(err, domain.ErrCorruptData):
		s.log.WarnContext(ctx, "vocab data unreadable, starting from an empty set",
			slog.String("pair", pair.String()),
			slog.String("error", err.Error()),
		)
		return domain.NewVocabularySet(domain.NewMeta(pair, "", "")), nil
	default:
		return nil, fmt.Errorf("load vocab: %w", err)
	}
}

func (s *Service) repairMeta(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) {
	if set.Meta.Pair() == pair {
		return
	}
	s.log.WarnContext(ctx, "vocab meta missing or foreign, rebuilt from pair",
		slog.String("pair", pair.String()),
		slog.String("meta_pair", set.Meta.Pair().String()),
	)
	set.Meta = domain.NewMeta(pair, "", "")
}

// Save writes the full set under pair after backing up the previous state.
func (s *Service) Save(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error {
	if err := s.store.Save(ctx, pair, set); err != nil {
		return fmt.Errorf("save vocab: %w", err)
	}
	return nil
}

// Backup copies the current durable state of pair to the backup location.
func (s *Service) Backup(ctx context.Context, pair domain.LangPair) error {
	if err := s.store.Backup(ctx, pair); err != nil {
		return fmt.Errorf("backup vocab: %w", err)
	}
	return nil
}

// InitializeIfAbsent creates the set for meta's pair holding only meta.
func (s *Service) InitializeIfAbsent(ctx context.Context, meta domain.Meta) (bool, error) {
	created, err := s.store.InitializeIfAbsent(ctx, meta)
	if err != nil {
		return false, fmt.Errorf("initialize vocab: %w", err)
	}
	if created {
		s.log.InfoContext(ctx, "vocab initialized",
			slog.String("pair", meta.Pair().String()),
			slog.String("key_lang", meta.KeyLangName),
			slog.String("value_lang", meta.ValLangName),
		)
	}
	return created, nil
}

// Count returns the number of headwords stored for pair.
func (s *Service) Count(ctx context.Context, pair domain.LangPair) (int, error) {
	set, err := s.Load(ctx, pair)
	if err != nil {
		return 0, err
	}
	return set.Len(), nil
}

// Get returns a copy of the entry for headword.
func (s *Service) Get(ctx context.Context, pair domain.LangPair, headword string) (domain.Entry, error) {
	set, err := s.Load(ctx, pair)
	if err != nil {
		return domain.Entry{}, err
	}
	e, ok := set.Entry(headword)
	if !ok {
		return domain.Entry{}, fmt.Errorf("headword %q: %w", headword, domain.ErrNotFound)
	}
	return *e, nil
}

// Pairs lists every stored language pair.
func (s *Service) Pairs(ctx context.Context) ([]domain.LangPair, error) {
	pairs, err := s.store.ListPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pairs: %w", err)
	}
	return pairs, nil
}

// Replace overwrites the stored set for pair with set. The incoming meta
// must describe the same pair.
func (s *Service) Replace(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error {
	if set.Meta.Pair() != pair {
		return domain.NewValidationError("meta", fmt.Sprintf("describes %s, expected %s", set.Meta.Pair(), pair))
	}
	if err := s.Save(ctx, pair, set); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "vocab replaced", slog.String("pair", pair.String()), slog.Int("headwords", set.Len()))
	return nil
}

// RestoreBackup makes the backup copy of pair the current state. The state
// being replaced becomes the new backup.
func (s *Service) RestoreBackup(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	backup, err := s.store.LoadBackup(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("load backup: %w", err)
	}
	s.repairMeta(ctx, pair, backup)
	if err := s.Save(ctx, pair, backup); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "vocab restored from backup", slog.String("pair", pair.String()), slog.Int("headwords", backup.Len()))
	return backup, nil
}
