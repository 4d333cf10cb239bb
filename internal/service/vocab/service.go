// Package vocab owns reads and writes of vocabulary sets: the store
// accessor that turns missing or unreadable data into an empty set, the
// merge engine, and deletion.
package vocab

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabStore interface {
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	LoadBackup(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	Save(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error
	Backup(ctx context.Context, pair domain.LangPair) error
	InitializeIfAbsent(ctx context.Context, meta domain.Meta) (bool, error)
	ListPairs(ctx context.Context) ([]domain.LangPair, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements vocabulary persistence and mutation.
type Service struct {
	store vocabStore
	log   *slog.Logger
}

// NewService creates a new Vocab service.
func NewService(log *slog.Logger, store vocabStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "vocab"),
	}
}
