// Package snapshot writes timestamped JSON copies of every stored
// vocabulary set and keeps only the newest few per language pair.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const (
	timeLayout = "20060102T150405Z"
	fileExt    = ".json"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabService interface {
	Pairs(ctx context.Context) ([]domain.LangPair, error)
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service takes snapshots into one directory.
type Service struct {
	vocab vocabService
	dir   string
	keep  int
	clock clockwork.Clock
	log   *slog.Logger
}

// NewService creates a new Snapshot service. keep below 1 keeps one file.
func NewService(log *slog.Logger, vocab vocabService, dir string, keep int, clock clockwork.Clock) *Service {
	if keep < 1 {
		keep = 1
	}
	return &Service{
		vocab: vocab,
		dir:   dir,
		keep:  keep,
		clock: clock,
		log:   log.With("service", "snapshot"),
	}
}

// Dir returns the snapshot directory.
func (s *Service) Dir() string { return s.dir }

// TakeAll snapshots every stored pair and returns the paths written. A pair
// that fails is logged and skipped; the first such error is returned after
// the others have been attempted.
func (s *Service) TakeAll(ctx context.Context) ([]string, error) {
	pairs, err := s.vocab.Pairs(ctx)
	if err != nil {
		return nil, err
	}

	var (
		written  []string
		firstErr error
	)
	for _, pair := range pairs {
		path, err := s.Take(ctx, pair)
		if err != nil {
			s.log.ErrorContext(ctx, "snapshot failed", slog.String("pair", pair.String()), slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written = append(written, path)
	}
	return written, firstErr
}

// Take writes one snapshot of pair and prunes older ones.
func (s *Service) Take(ctx context.Context, pair domain.LangPair) (string, error) {
	set, err := s.vocab.Load(ctx, pair)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	name := pair.String() + "_" + s.clock.Now().UTC().Format(timeLayout) + fileExt
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	removed, err := s.prune(pair)
	if err != nil {
		return path, err
	}

	s.log.InfoContext(ctx, "snapshot written",
		slog.String("path", path),
		slog.Int("entries", set.Len()),
		slog.Int("pruned", removed),
	)
	return path, nil
}

// List returns the snapshot paths of pair, oldest first.
func (s *Service) List(pair domain.LangPair) ([]string, error) {
	prefix := pair.String() + "_"
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		// "it_en_" must not match "it_en_us_...".
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), fileExt)
		if len(stamp) != len(timeLayout) {
			continue
		}
		out = append(out, filepath.Join(s.dir, name))
	}
	slices.Sort(out)
	return out, nil
}

func (s *Service) prune(pair domain.LangPair) (int, error) {
	paths, err := s.List(pair)
	if err != nil {
		return 0, err
	}
	if len(paths) <= s.keep {
		return 0, nil
	}

	stale := paths[:len(paths)-s.keep]
	for _, p := range stale {
		if err := os.Remove(p); err != nil {
			return 0, fmt.Errorf("prune snapshot: %w", err)
		}
	}
	return len(stale), nil
}
