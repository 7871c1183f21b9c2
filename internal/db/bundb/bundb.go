// Package bundb owns the Postgres connection and the per-module repository
// bundle handed to the application wiring.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	playerdb "github.com/mulligan-crew/golftrip/app/modules/player/infrastructure/repositories"
)

// DBService bundles the shared bun.DB with the module repositories built on it.
type DBService struct {
	Player playerdb.Repository
	Score  handicapdb.Repository
	Match  matchdb.Repository

	db *bun.DB
}

// GetDB returns the underlying connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService connects to Postgres and builds the repository bundle.
func NewBunDBService(ctx context.Context, dsn string) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		Player: &playerdb.PlayerDBImpl{DB: db},
		Score:  &handicapdb.ScoreDBImpl{DB: db},
		Match:  &matchdb.MatchDBImpl{DB: db},
		db:     db,
	}, nil
}

// Close releases the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}
