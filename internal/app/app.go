// Package app wires configuration, stores, services and transports into a
// runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/vocab-builder/internal/adapter/provider/mstranslator"
	"github.com/heartmarshall/vocab-builder/internal/adapter/provider/translate"
	"github.com/heartmarshall/vocab-builder/internal/adapter/store/file"
	"github.com/heartmarshall/vocab-builder/internal/adapter/store/postgres"
	"github.com/heartmarshall/vocab-builder/internal/adapter/store/sqlite"
	"github.com/heartmarshall/vocab-builder/internal/config"
	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/impex"
	"github.com/heartmarshall/vocab-builder/internal/service/snapshot"
	"github.com/heartmarshall/vocab-builder/internal/service/study"
	"github.com/heartmarshall/vocab-builder/internal/service/vocab"
	"github.com/heartmarshall/vocab-builder/internal/service/workspace"
)

// SnapshotDirName is the directory inside the data directory that holds
// periodic JSON snapshots.
const SnapshotDirName = "snapshots"

// Store is what every vocabulary store driver provides.
type Store interface {
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	LoadBackup(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	Save(ctx context.Context, pair domain.LangPair, set *domain.VocabularySet) error
	Backup(ctx context.Context, pair domain.LangPair) error
	InitializeIfAbsent(ctx context.Context, meta domain.Meta) (bool, error)
	ListPairs(ctx context.Context) ([]domain.LangPair, error)
	Ping(ctx context.Context) error
	Close() error
}

// Provider is the translation service the workspace and importers use.
type Provider interface {
	GetLanguages(ctx context.Context) (map[string]domain.Language, error)
	Translate(ctx context.Context, from, to, text string) (string, error)
}

// Container holds the wired application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Clock  clockwork.Clock

	Store    Store
	Prefs    *file.Prefs
	Provider Provider

	Vocab      *vocab.Service
	Study      *study.Service
	Workspaces *workspace.Service
	Impex      *impex.Service
	Snapshots  *snapshot.Service
}

// Build opens the configured store and creates every service. Callers
// must Close the container.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	clock := clockwork.NewRealClock()

	prefs, err := file.NewPrefs(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, err
	}
	if _, err := prefs.EnsureInitialData(); err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	provider := newProvider(cfg.Translator, logger)

	vocabSvc := vocab.NewService(logger, store)
	studySvc := study.NewService(logger, vocabSvc, clock)
	snapshotDir := filepath.Join(cfg.Storage.DataDir, SnapshotDirName)

	c := &Container{
		Config:     cfg,
		Logger:     logger,
		Clock:      clock,
		Store:      store,
		Prefs:      prefs,
		Provider:   provider,
		Vocab:      vocabSvc,
		Study:      studySvc,
		Workspaces: workspace.NewService(logger, vocabSvc, studySvc, provider),
		Impex:      impex.NewService(logger, vocabSvc, provider, cfg.Storage.DataDir),
		Snapshots:  snapshot.NewService(logger, vocabSvc, snapshotDir, cfg.Backup.SnapshotKeep, clock),
	}

	logger.Info("application built",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("lookup", cfg.Translator.Enabled()),
	)
	return c, nil
}

// Close releases the store.
func (c *Container) Close() error {
	if err := c.Store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverFile:
		s, err := file.New(cfg.DataDir, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return postgres.New(pool, logger), nil
	default:
		return nil, errors.New("unknown storage driver " + cfg.Driver)
	}
}

func newProvider(cfg config.TranslatorConfig, logger *slog.Logger) Provider {
	if !cfg.Enabled() {
		logger.Info("word lookup disabled")
		return translate.NewDisabled()
	}
	return mstranslator.NewProvider(cfg, logger)
}
