package config

import (
	"time"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Study      StudyConfig      `yaml:"study"`
	Translator TranslatorConfig `yaml:"translator"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Backup     BackupConfig     `yaml:"backup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Storage drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects and configures the vocabulary store.
type StorageConfig struct {
	Driver     string         `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"file"`
	DataDir    string         `yaml:"data_dir"    env:"VB_DATA_DIR"         env-default:"~/vocab_builder/data"`
	SQLitePath string         `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH"`
	Postgres   DatabaseConfig `yaml:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StudyConfig holds review defaults.
type StudyConfig struct {
	FromLang           string `yaml:"from_lang"         env:"VB_FROM_LANG"         env-default:"en"`
	ToLang             string `yaml:"to_lang"           env:"VB_TO_LANG"           env-default:"it"`
	MinCorrect         int    `yaml:"min_correct"       env:"VB_MIN_CORRECT"       env-default:"5"`
	MinAgeDays         int    `yaml:"min_age_days"      env:"VB_MIN_AGE"           env-default:"15"`
	WordOrderRaw       string `yaml:"word_order"        env:"VB_WORD_ORDER"        env-default:"to-from"`
	ServerWordOrderRaw string `yaml:"server_word_order" env:"VB_SERVER_WORD_ORDER" env-default:"from-to"`
	PartOfSpeechRaw    string `yaml:"part_of_speech"    env:"VB_PART_OF_SPEECH"    env-default:"Any"`

	// WordOrder is parsed from WordOrderRaw during validation.
	WordOrder domain.WordOrder `yaml:"-" env:"-"`
	// ServerWordOrder is parsed from ServerWordOrderRaw during validation.
	ServerWordOrder domain.WordOrder `yaml:"-" env:"-"`
	// PartFilter is parsed from PartOfSpeechRaw during validation.
	PartFilter domain.PartFilter `yaml:"-" env:"-"`
}

// Pair returns the configured default language pair.
func (s StudyConfig) Pair() domain.LangPair {
	return domain.LangPair{From: s.FromLang, To: s.ToLang}
}

// TranslatorConfig holds translation provider settings.
type TranslatorConfig struct {
	APIKey             string        `yaml:"api_key"               env:"API_KEY"`
	Endpoint           string        `yaml:"endpoint"              env:"TRANSLATOR_ENDPOINT"       env-default:"https://api.cognitive.microsofttranslator.com"`
	Region             string        `yaml:"region"                env:"TRANSLATOR_REGION"         env-default:"eastus"`
	Timeout            time.Duration `yaml:"timeout"               env:"TRANSLATOR_TIMEOUT"        env-default:"5s"`
	Lookup             bool          `yaml:"lookup"                env:"VB_WORD_LOOKUP"            env-default:"true"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"TRANSLATOR_RATE_LIMIT"     env-default:"30"`
}

// Enabled reports whether lookups can be attempted at all.
func (t TranslatorConfig) Enabled() bool {
	return t.Lookup && t.APIKey != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"       env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"      env:"LOG_FORMAT"       env-default:"text"`
	Dir        string `yaml:"dir"         env:"VB_LOGGING_DIR"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"  env-default:"10"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"  env-default:"3"`
}

// BackupConfig controls periodic snapshots taken while serving.
type BackupConfig struct {
	Enabled          bool          `yaml:"enabled"           env:"BACKUP_ENABLED"           env-default:"true"`
	SnapshotInterval time.Duration `yaml:"snapshot_interval" env:"BACKUP_SNAPSHOT_INTERVAL" env-default:"24h"`
	SnapshotKeep     int           `yaml:"snapshot_keep"     env:"BACKUP_SNAPSHOT_KEEP"     env-default:"7"`
}
