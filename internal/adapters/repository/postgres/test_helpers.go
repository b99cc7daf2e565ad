package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// findMigrationsDir walks upwards from the working directory until it finds
// the go.mod, then resolves db/migrations from there.
func findMigrationsDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "db", "migrations"), nil
		}
		if wd == filepath.Dir(wd) {
			return "", errors.New("go.mod not found in any parent directory")
		}
		wd = filepath.Dir(wd)
	}
}

// NewTestDB starts a postgres container, runs the migrations and returns the
// db handle plus a terminate func and a truncate-all func for test isolation.
func NewTestDB(t *testing.T) (*sql.DB, func(), func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed repository test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpassword",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	host, _ := pgContainer.Host(ctx)
	mappedPort, _ := pgContainer.MappedPort(ctx, "5432")
	dbURL := fmt.Sprintf("postgres://testuser:testpassword@%s:%s/testdb?sslmode=disable", host, mappedPort.Port())

	migrationsDir, err := findMigrationsDir()
	if err != nil {
		t.Fatalf("could not locate migrations: %v", err)
	}

	src := &url.URL{Scheme: "file", Path: filepath.ToSlash(migrationsDir)}
	m, err := migrate.New(src.String(), dbURL)
	if err != nil {
		t.Fatalf("failed to init migrate with URL %s: %v", src.String(), err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run up migrations: %v", err)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	cleanup := func() {
		db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate postgres container: %v", err)
		}
	}

	truncateAll := func() {
		if _, err := db.Exec(`TRUNCATE TABLE ui_listings, payments RESTART IDENTITY CASCADE`); err != nil {
			t.Fatalf("failed to truncate tables: %v", err)
		}
	}

	return db, cleanup, truncateAll
}
