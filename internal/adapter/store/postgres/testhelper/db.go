// Package testhelper runs the postgres store tests against a disposable
// PostgreSQL container.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/vocab-builder/internal/adapter/store/postgres"
	"github.com/heartmarshall/vocab-builder/internal/config"
)

const image = "postgres:17-alpine"

var (
	once   sync.Once
	dsn    string
	dsnErr error
)

// SetupTestDB returns a migrated, empty database. One container serves the
// whole test binary; each call gets its own pool closed on cleanup.
// Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres container skipped in short mode")
	}

	once.Do(func() { dsn, dsnErr = startContainer() })
	if dsnErr != nil {
		t.Fatalf("testhelper: %v", dsnErr)
	}

	pool, err := postgres.NewPool(context.Background(), config.DatabaseConfig{DSN: dsn, MaxConns: 4})
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	Truncate(t, pool)
	return pool
}

// Truncate empties both vocabulary tables.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE vocab_sets, vocab_set_backups`); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "vocab",
				"POSTGRES_PASSWORD": "vocab",
				"POSTGRES_DB":       "vocab_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}
	url := fmt.Sprintf("postgres://vocab:vocab@%s:%s/vocab_test?sslmode=disable", host, port.Port())

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: url})
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return url, nil
}
