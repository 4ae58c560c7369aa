package testdb

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/correialeo/meandai/internal/platform/postgres/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

// Environment variables consulted for the test database URL, in order.
const (
	EnvDatabaseURL   = "DATABASE_URL"
	EnvTestDBURL     = "MEANDAI_TEST_DB_URL"
	EnvDBConnection  = "MEANDAI_DB_CONNECTION"
	connectTimeout   = 5 * time.Second
	migrationTimeout = 30 * time.Second
)

var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// migrateOnce guards goose's package-level state; migrations run once per
// test binary.
var (
	migrateOnce sync.Once
	migrateErr  error
)

// IsCI reports whether the tests run under a CI provider.
func IsCI() bool {
	for _, name := range ciVariables {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// DatabaseURL returns the first configured test database URL, or "".
func DatabaseURL() string {
	for _, name := range []string{EnvDatabaseURL, EnvTestDBURL, EnvDBConnection} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// MaskURL hides the password of a database URL for logging.
func MaskURL(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.Scheme == "" {
		return "invalid-url"
	}
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	return u.String()
}

// GetTestDB opens the test database, applies migrations and registers
// cleanup. It skips the test when no database is configured outside CI.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := DatabaseURL()
	if dsn == "" {
		if IsCI() {
			t.Fatalf("no test database configured: set %s", EnvDatabaseURL)
		}
		t.Skipf("%s not set; skipping database test", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to open test database %s: %v", MaskURL(dsn), err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database %s: %v", MaskURL(dsn), err)
	}

	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return db
}

// ApplyMigrations brings the schema up to date using the embedded
// migrations. Only the first call per process does any work.
func ApplyMigrations(db *sql.DB) error {
	migrateOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
		defer cancel()

		goose.SetBaseFS(migrations.FS)
		if migrateErr = goose.SetDialect("postgres"); migrateErr != nil {
			return
		}
		migrateErr = goose.UpContext(ctx, db, ".")
	})
	return migrateErr
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
