// Package file implements the vocabulary store as one JSON document per
// language pair inside a data directory. Every write first copies the
// previous document to a ".bk" sibling.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const (
	vocabSuffix  = "_vocab.json"
	backupSuffix = ".bk"
)

// Store persists vocabulary sets as JSON files.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create data dir: %w", err)
	}
	return &Store{
		dir: dir,
		log: logger.With("adapter", "file_store"),
	}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// VocabPath returns the primary document path for pair.
func (s *Store) VocabPath(pair domain.LangPair) string {
	return filepath.Join(s.dir, pair.String()+vocabSuffix)
}

// BackupPath returns the backup document path for pair.
func (s *Store) BackupPath(pair domain.LangPair) string {
	return s.VocabPath(pair) + backupSuffix
}

// Load reads the set for pair. It returns domain.ErrNoData when no document
// exists and domain.ErrCorruptData when the document cannot be decoded.
func (s *Store) Load(_ context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	return readSet(s.VocabPath(pair), pair.String())
}

// LoadBackup reads the backup document for pair with the same error
// semantics as Load.
func (s *Store) LoadBackup(_ context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	return readSet(s.BackupPath(pair), pair.String()+" backup")
}

func readSet(path, label string) (*domain.VocabularySet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("vocab %s: %w", label, domain.ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("vocab %s: read: %w", label, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("vocab %s: empty document: %w", label, domain.ErrCorruptData)
	}

	var set domain.VocabularySet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("vocab %s: %w: %w", label, domain.ErrCorruptData, err)
	}
	return &set, nil
}

// Save backs up the current document of pair and then replaces it with set.
// The new document is written to a temporary file and renamed into place.
func (s *Store) Save(_ context.Context, pair domain.LangPair, set *domain.VocabularySet) error {
	if err := domain.CheckSetPair(pair, set); err != nil {
		return fmt.Errorf("vocab save: %w", err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("vocab %s: encode: %w", pair, err)
	}

	if err := s.copyToBackup(pair); err != nil {
		return err
	}

	if err := writeAtomic(s.VocabPath(pair), data); err != nil {
		return fmt.Errorf("vocab %s: write: %w", pair, err)
	}

	s.log.Debug("vocab saved", slog.String("pair", pair.String()), slog.Int("headwords", set.Len()))
	return nil
}

// Backup copies the current document to the backup location. A missing
// document is not an error.
func (s *Store) Backup(_ context.Context, pair domain.LangPair) error {
	return s.copyToBackup(pair)
}

// InitializeIfAbsent creates a document holding only meta. It reports
// whether a document was created.
func (s *Store) InitializeIfAbsent(_ context.Context, meta domain.Meta) (bool, error) {
	pair := meta.Pair()
	if err := pair.Validate(); err != nil {
		return false, err
	}

	path := s.VocabPath(pair)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("vocab %s: stat: %w", pair, err)
	}

	data, err := json.MarshalIndent(domain.NewVocabularySet(meta), "", "  ")
	if err != nil {
		return false, fmt.Errorf("vocab %s: encode: %w", pair, err)
	}
	if err := writeAtomic(path, data); err != nil {
		return false, fmt.Errorf("vocab %s: create: %w", pair, err)
	}

	s.log.Info("vocab created", slog.String("pair", pair.String()), slog.String("path", path))
	return true, nil
}

// ListPairs returns every language pair with a primary document.
func (s *Store) ListPairs(_ context.Context) ([]domain.LangPair, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+vocabSuffix))
	if err != nil {
		return nil, fmt.Errorf("list vocab files: %w", err)
	}

	pairs := make([]domain.LangPair, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), vocabSuffix)
		to, from, ok := strings.Cut(name, "_")
		if !ok || to == "" || from == "" {
			continue
		}
		pairs = append(pairs, domain.LangPair{From: from, To: to})
	}
	return pairs, nil
}

// Ping checks that the data directory is reachable.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("file store: %w", err)
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) copyToBackup(pair domain.LangPair) error {
	data, err := os.ReadFile(s.VocabPath(pair))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("vocab %s: read for backup: %w", pair, err)
	}

	if err := writeAtomic(s.BackupPath(pair), data); err != nil {
		return fmt.Errorf("vocab %s: backup: %w", pair, err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
