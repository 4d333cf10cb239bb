package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration
// and fills the parsed fields. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if err := c.Translator.validate(); err != nil {
		return fmt.Errorf("translator: %w", err)
	}

	if err := c.Backup.validate(); err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverFile, DriverSQLite:
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
	default:
		return fmt.Errorf("driver must be one of file, sqlite, postgres (got %q)", s.Driver)
	}

	if strings.TrimSpace(s.DataDir) == "" {
		return fmt.Errorf("data_dir is required")
	}
	dir, err := expandHome(s.DataDir)
	if err != nil {
		return err
	}
	s.DataDir = dir

	if s.SQLitePath == "" {
		s.SQLitePath = filepath.Join(s.DataDir, "vocab.db")
	}
	return nil
}

func (s *StudyConfig) validate() error {
	if err := s.Pair().Validate(); err != nil {
		return err
	}
	if s.MinCorrect < 0 {
		return fmt.Errorf("min_correct must be >= 0 (got %d)", s.MinCorrect)
	}
	if s.MinAgeDays < 0 {
		return fmt.Errorf("min_age_days must be >= 0 (got %d)", s.MinAgeDays)
	}

	order, err := domain.ParseWordOrder(s.WordOrderRaw)
	if err != nil {
		return fmt.Errorf("word_order: %w", err)
	}
	s.WordOrder = order

	serverOrder, err := domain.ParseWordOrder(s.ServerWordOrderRaw)
	if err != nil {
		return fmt.Errorf("server_word_order: %w", err)
	}
	s.ServerWordOrder = serverOrder

	s.PartFilter = domain.ParsePartFilter(s.PartOfSpeechRaw)
	return nil
}

func (t *TranslatorConfig) validate() error {
	if t.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	if t.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", t.RateLimitPerMinute)
	}
	return nil
}

func (b *BackupConfig) validate() error {
	if !b.Enabled {
		return nil
	}
	if b.SnapshotInterval < time.Minute {
		return fmt.Errorf("snapshot_interval must be >= 1m (got %v)", b.SnapshotInterval)
	}
	if b.SnapshotKeep < 1 {
		return fmt.Errorf("snapshot_keep must be >= 1 (got %d)", b.SnapshotKeep)
	}
	return nil
}
