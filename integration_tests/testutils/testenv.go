// Package testutils provisions the real-Postgres environment shared by the
// integration tests: one container per test binary, migrated schemas, and a
// truncate helper for isolation between tests.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
	handicapmigrations "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories/migrations"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	matchmigrations "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories/migrations"
	playerdb "github.com/mulligan-crew/golftrip/app/modules/player/infrastructure/repositories"
	playermigrations "github.com/mulligan-crew/golftrip/app/modules/player/infrastructure/repositories/migrations"
	"github.com/mulligan-crew/golftrip/integration_tests/containers"
)

// TestEnv is the shared integration environment.
type TestEnv struct {
	DSN string
	DB  *bun.DB

	Players playerdb.Repository
	Scores  handicapdb.Repository
	Matches matchdb.Repository
}

var (
	envOnce sync.Once
	env     *TestEnv
	envErr  error
)

// GetTestEnv starts (once per binary) a Postgres container, runs every module
// migration, and returns the environment. Tests requiring Docker are skipped
// in -short mode.
func GetTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	envOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		env, envErr = setup(ctx)
	})
	if envErr != nil {
		t.Fatalf("failed to set up integration environment: %v", envErr)
	}
	return env
}

func setup(ctx context.Context) (*TestEnv, error) {
	_, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	migrationSets := []*migrate.Migrations{
		playermigrations.Migrations,
		handicapmigrations.Migrations,
		matchmigrations.Migrations,
	}
	for _, set := range migrationSets {
		migrator := migrate.NewMigrator(db, set)
		if err := migrator.Init(ctx); err != nil {
			return nil, fmt.Errorf("failed to init migrator: %w", err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &TestEnv{
		DSN:     dsn,
		DB:      db,
		Players: &playerdb.PlayerDBImpl{DB: db},
		Scores:  &handicapdb.ScoreDBImpl{DB: db},
		Matches: &matchdb.MatchDBImpl{DB: db},
	}, nil
}

// Truncate wipes every module table so tests start from a clean slate.
func (e *TestEnv) Truncate(ctx context.Context, t *testing.T) {
	t.Helper()

	for _, table := range []string{"round_scores", "matches", "match_history", "players"} {
		if _, err := e.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
