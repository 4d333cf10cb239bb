// Package impex moves vocabulary sets in and out of CSV, JSON and XLSX.
package impex

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/vocab"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabService interface {
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	Backup(ctx context.Context, pair domain.LangPair) error
	Merge(ctx context.Context, pair domain.LangPair, pairs []vocab.MergePair, opts vocab.MergeOptions) (vocab.MergeResult, error)
	Replace(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error
}

type translator interface {
	Translate(ctx context.Context, from, to, text string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements import and export.
type Service struct {
	vocab       vocabService
	translator  translator
	snapshotDir string
	log         *slog.Logger
}

// NewService creates a new Impex service. CSV snapshots after imports are
// written to snapshotDir; an empty snapshotDir disables them.
func NewService(log *slog.Logger, vocab vocabService, translator translator, snapshotDir string) *Service {
	return &Service{
		vocab:       vocab,
		translator:  translator,
		snapshotDir: snapshotDir,
		log:         log.With("service", "impex"),
	}
}
