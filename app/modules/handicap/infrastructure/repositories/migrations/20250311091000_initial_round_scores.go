package handicapmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating round_scores table...")

		if _, err := db.NewCreateTable().Model((*handicapdb.RoundScore)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*handicapdb.RoundScore)(nil)).
			Index("idx_round_scores_player_created").
			Column("player_id", "created_at").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round scores table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping round_scores table...")

		if _, err := db.NewDropTable().Model((*handicapdb.RoundScore)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round scores table dropped successfully!")
		return nil
	})
}
