// Package study selects due words and drives a review session over them.
package study

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabService interface {
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	Save(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements selection and review.
type Service struct {
	vocab vocabService
	clock clockwork.Clock
	intn  func(n int) int
	log   *slog.Logger
}

// NewService creates a new Study service.
func NewService(log *slog.Logger, vocab vocabService, clock clockwork.Clock) *Service {
	return &Service{
		vocab: vocab,
		clock: clock,
		intn:  rand.IntN,
		log:   log.With("service", "study"),
	}
}

// today returns the current calendar day as midnight UTC.
func (s *Service) today() time.Time {
	return civilDay(s.clock.Now())
}
