// Package postgres implements the vocabulary store on PostgreSQL.
// Each language pair is one row in vocab_sets holding the JSON document as
// text, so entry order survives a round trip. Saves copy the current row to
// vocab_set_backups in the same transaction.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const (
	tableSets    = "vocab_sets"
	tableBackups = "vocab_set_backups"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Store persists vocabulary sets in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a Store on an existing pool. Migrations must already be
// applied; see Migrate.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{
		pool: pool,
		log:  logger.With("adapter", "postgres_store"),
	}
}

func pairEq(pair domain.LangPair) squirrel.Eq {
	return squirrel.Eq{"key_lang": pair.To, "value_lang": pair.From}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Load returns the set for pair, domain.ErrNoData when no row exists and
// domain.ErrCorruptData when the stored document cannot be decoded.
func (s *Store) Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	return s.load(ctx, tableSets, pair, "vocab")
}

// LoadBackup returns the backup copy for pair.
func (s *Store) LoadBackup(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error) {
	return s.load(ctx, tableBackups, pair, "vocab backup")
}

func (s *Store) load(ctx context.Context, table string, pair domain.LangPair, entity string) (*domain.VocabularySet, error) {
	query, args, err := psql.Select("document").From(table).Where(pairEq(pair)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s %s: build query: %w", entity, pair, err)
	}

	var doc string
	if err := s.conn(ctx).QueryRow(ctx, query, args...).Scan(&doc); err != nil {
		return nil, mapError(err, entity, pair.String())
	}

	if strings.TrimSpace(doc) == "" {
		return nil, fmt.Errorf("%s %s: empty document: %w", entity, pair, domain.ErrCorruptData)
	}
	var set domain.VocabularySet
	if err := json.Unmarshal([]byte(doc), &set); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", entity, pair, domain.ErrCorruptData, err)
	}
	return &set, nil
}

// ListPairs returns every stored language pair.
func (s *Store) ListPairs(ctx context.Context) ([]domain.LangPair, error) {
	query, args, err := psql.Select("key_lang", "value_lang").
		From(tableSets).
		OrderBy("key_lang", "value_lang").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list vocab pairs: build query: %w", err)
	}

	rows, err := s.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vocab pairs: %w", err)
	}
	defer rows.Close()

	pairs := []domain.LangPair{}
	for rows.Next() {
		var p domain.LangPair
		if err := rows.Scan(&p.To, &p.From); err != nil {
			return nil, fmt.Errorf("list vocab pairs: scan: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vocab pairs: %w", err)
	}
	return pairs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save copies the current row of pair to the backup table and replaces it
// with set.
func (s *Store) Save(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error {
	if err := domain.CheckSetPair(pair, set); err != nil {
		return fmt.Errorf("vocab save: %w", err)
	}

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("vocab %s: encode: %w", pair, err)
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.Backup(ctx, pair); err != nil {
			return err
		}

		query, args, err := psql.Insert(tableSets).
			Columns("key_lang", "value_lang", "document", "updated_at").
			Values(pair.To, pair.From, string(data), squirrel.Expr("now()")).
			Suffix("ON CONFLICT (key_lang, value_lang) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("vocab %s: build upsert: %w", pair, err)
		}
		if _, err := s.conn(ctx).Exec(ctx, query, args...); err != nil {
			return mapError(err, "vocab", pair.String())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Debug("vocab saved", slog.String("pair", pair.String()), slog.Int("headwords", set.Len()))
	return nil
}

// Backup copies the current row to the backup table. A missing row is not
// an error.
func (s *Store) Backup(ctx context.Context, pair domain.LangPair) error {
	current := psql.Select("key_lang", "value_lang", "document", "now()").
		From(tableSets).
		Where(pairEq(pair))

	query, args, err := psql.Insert(tableBackups).
		Columns("key_lang", "value_lang", "document", "created_at").
		Select(current).
		Suffix("ON CONFLICT (key_lang, value_lang) DO UPDATE SET document = EXCLUDED.document, created_at = EXCLUDED.created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("vocab %s: build backup: %w", pair, err)
	}

	if _, err := s.conn(ctx).Exec(ctx, query, args...); err != nil {
		return mapError(err, "vocab backup", pair.String())
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

	query, args, err := psql.Insert(tableSets).
		Columns("key_lang", "value_lang", "document").
		Values(pair.To, pair.From, string(data)).
		Suffix("ON CONFLICT (key_lang, value_lang) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("vocab %s: build insert: %w", pair, err)
	}

	tag, err := s.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return false, mapError(err, "vocab", pair.String())
	}

	created := tag.RowsAffected() > 0
	if created {
		s.log.Info("vocab created", slog.String("pair", pair.String()))
	}
	return created, nil
}

// Ping checks the pool.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
