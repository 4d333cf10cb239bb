// Package sqlite implements the vocabulary store on a single SQLite
// database file. Each language pair is one row holding the JSON document,
// and every write first copies the current row into vocab_set_backups.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store persists vocabulary sets in SQLite.
type Store struct {
	db  *sqlx.DB
	log *slog.Logger
}

// Open connects to the database at path, creating the file and applying
// migrations when needed.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite store: create dir: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("sqlite store: connect: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db.DB); err != nil {
		db.Close()
		return nil, err
	}

	log := logger.With("adapter", "sqlite_store")
	log.Info("sqlite store opened", slog.String("path", path))

	return &Store{db: db, log: log}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sqlite store: migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("sqlite store: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("sqlite store: migrate: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

const (
	selectDocumentSQL = `SELECT document FROM vocab_sets WHERE key_lang = ? AND value_lang = ?`

	selectBackupSQL = `SELECT document FROM vocab_set_backups WHERE key_lang = ? AND value_lang = ?`

	backupSQL = `
INSERT INTO vocab_set_backups (key_lang, value_lang, document, created_at)
SELECT key_lang, value_lang, document, CURRENT_TIMESTAMP
FROM vocab_sets
WHERE key_lang = ? AND value_lang = ?
ON CONFLICT (key_lang, value_lang) DO UPDATE SET
    document = excluded.document,
    created_at = excluded.created_at`

	upsertSQL = `
INSERT INTO vocab_sets (key_lang, value_lang, document, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key_lang, value_lang) DO UPDATE SET
    document = excluded.document,
    updated_at = excluded.updated_at`

	insertIfAbsentSQL = `
INSERT INTO vocab_sets (key_lang, value_lang, document, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key_lang, value_lang) DO NOTHING`

	listPairsSQL = `SELECT key_lang, value_lang FROM vocab_sets ORDER BY key_lang, value_lang`
)

type pairRow struct {
	KeyLang   string `db:"key_lang"`
	ValueLang string `db:"value_lang"`
}

// Load returns the set for pair, domain.ErrNoData when no row exists and
// domain.ErrCorruptData when the stored document cannot be decoded.
func (s *Store) Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	return s.load(ctx, selectDocumentSQL, pair, pair.String())
}

// LoadBackup returns the backup copy for pair.
func (s *Store) LoadBackup(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	return s.load(ctx, selectBackupSQL, pair, pair.String()+" backup")
}

func (s *Store) load(ctx context.Context, query string, pair domain.LangPair, label string) (*domain.VocabularySet, error) {
	var doc string
	err := s.db.GetContext(ctx, &doc, query, pair.To, pair.From)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vocab %s: %w", label, domain.ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("vocab %s: select: %w", label, err)
	}
	return decode(doc, label)
}

// Save copies the current row to the backup table and replaces it with set
// inside one transaction.
func (s *Store) Save(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error {
	if err := domain.CheckSetPair(pair, set); err != nil {
		return fmt.Errorf("vocab save: %w", err)
	}

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("vocab %s: encode: %w", pair, err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("vocab %s: begin: %w", pair, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, backupSQL, pair.To, pair.From); err != nil {
		return fmt.Errorf("vocab %s: backup: %w", pair, err)
	}
	if _, err := tx.ExecContext(ctx, upsertSQL, pair.To, pair.From, string(data)); err != nil {
		return fmt.Errorf("vocab %s: upsert: %w", pair, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("vocab %s: commit: %w", pair, err)
	}

	s.log.Debug("vocab saved", slog.String("pair", pair.String()), slog.Int("headwords", set.Len()))
	return nil
}

// Backup copies the current row to the backup table. A missing row is not
// an error.
func (s *Store) Backup(ctx context.Context, pair domain.LangPair) error {
	if _, err := s.db.ExecContext(ctx, backupSQL, pair.To, pair.From); err != nil {
		return fmt.Errorf("vocab %s: backup: %w", pair, err)
	}
	return nil
}

// InitializeIfAbsent inserts a row holding only meta and reports whether it
// was created.
func (s *Store) InitializeIfAbsent(ctx context.Context, meta domain.Meta) (bool, error) {
	pair := meta.Pair()
	if err := pair.Validate(); err != nil {
		return false, err
	}

	data, err := json.Marshal(domain.NewVocabularySet(meta))
	if err != nil {
		return false, fmt.Errorf("vocab %s: encode: %w", pair, err)
	}

	res, err := s.db.ExecContext(ctx, insertIfAbsentSQL, pair.To, pair.From, string(data))
	if err != nil {
		return false, fmt.Errorf("vocab %s: create: %w", pair, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("vocab %s: rows affected: %w", pair, err)
	}

	if n > 0 {
		s.log.Info("vocab created", slog.String("pair", pair.String()))
	}
	return n > 0, nil
}

// ListPairs returns every stored language pair.
func (s *Store) ListPairs(ctx context.Context) ([]domain.LangPair, error) {
	var rows []pairRow
	if err := s.db.SelectContext(ctx, &rows, listPairsSQL); err != nil {
		return nil, fmt.Errorf("list vocab pairs: %w", err)
	}

	pairs := make([]domain.LangPair, len(rows))
	for i, r := range rows {
		pairs[i] = domain.LangPair{From: r.ValueLang, To: r.KeyLang}
	}
	return pairs, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func decode(doc, label string) (*domain.VocabularySet, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, fmt.Errorf("vocab %s: empty document: %w", label, domain.ErrCorruptData)
	}
	var set domain.VocabularySet
	if err := json.Unmarshal([]byte(doc), &set); err != nil {
		return nil, fmt.Errorf("vocab %s: %w: %w", label, domain.ErrCorruptData, err)
	}
	return &set, nil
}
