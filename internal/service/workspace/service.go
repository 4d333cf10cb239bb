// Package workspace opens a language pair for study and holds the state a
// caller needs between requests: the pair, its review session and whether
// online lookup is allowed.
package workspace

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/study"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabService interface {
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	InitializeIfAbsent(ctx context.Context, meta domain.Meta) (bool, error)
}

type studyService interface {
	Select(ctx context.Context, sess *study.Session) (int, error)
}

type languageProvider interface {
	GetLanguages(ctx context.Context) (map[string]domain.Language, error)
	Translate(ctx context.Context, from, to, text string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service opens workspaces and answers language questions for them.
type Service struct {
	vocab    vocabService
	study    studyService
	provider languageProvider
	log      *slog.Logger

	mu    sync.Mutex
	langs map[string]domain.Language
}

// NewService creates a new Workspace service.
func NewService(log *slog.Logger, vocab vocabService, study studyService, provider languageProvider) *Service {
	return &Service{
		vocab:    vocab,
		study:    study,
		provider: provider,
		log:      log.With("service", "workspace"),
	}
}

// Workspace is an opened language pair.
type Workspace struct {
	Meta    domain.Meta
	Session *study.Session
	Lookup  bool
}

// Pair returns the workspace's language pair.
func (w *Workspace) Pair() domain.LangPair { return w.Meta.Pair() }
