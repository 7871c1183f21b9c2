package matchmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating matches and match_history tables...")

		if _, err := db.NewCreateTable().Model((*matchdb.Match)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*matchdb.Match)(nil)).
			Index("idx_matches_status").
			Column("status").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*matchdb.MatchHistory)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*matchdb.MatchHistory)(nil)).
			Index("idx_match_history_sides").
			Column("side_a", "side_b").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Match tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping matches and match_history tables...")

		if _, err := db.NewDropTable().Model((*matchdb.MatchHistory)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*matchdb.Match)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Match tables dropped successfully!")
		return nil
	})
}
