// Package testhelper runs one migrated PostgreSQL container per test binary
// and seeds rows for repository and end-to-end tests.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/visaletter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/visaletter-backend/internal/config"
	"github.com/heartmarshall/visaletter-backend/migrations"
)

const (
	image        = "postgres:17-alpine"
	startTimeout = 2 * time.Minute
)

var (
	once    sync.Once
	dsn     string
	initErr error
)

// SetupTestDB returns a pool on the shared container, starting and migrating
// it on first use. The pool closes with the test. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: PostgreSQL integration test skipped in -short mode")
	}

	once.Do(func() { dsn, initErr = start() })
	if initErr != nil {
		t.Fatalf("testhelper: start database: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 10})
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func start() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "visaletter",
				"POSTGRES_PASSWORD": "visaletter",
				"POSTGRES_DB":       "visaletter_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}
	url := fmt.Sprintf("postgres://visaletter:visaletter@%s:%s/visaletter_test?sslmode=disable", host, port.Port())

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: url, MaxConns: 2})
	if err != nil {
		return "", err
	}
	defer pool.Close()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := postgres.Migrate(ctx, pool, migrations.FS, quiet); err != nil {
		return "", err
	}
	return url, nil
}
