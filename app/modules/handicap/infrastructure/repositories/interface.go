package handicapdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Repository is the round score storage contract. A nil db runs against the
// repository's base connection; passing a bun.Tx scopes the call to that
// transaction.
type Repository interface {
	InsertScore(ctx context.Context, db bun.IDB, score *RoundScore) error
	GetScore(ctx context.Context, db bun.IDB, id sharedtypes.RoundScoreID) (*RoundScore, error)
	GetScoresForPlayer(ctx context.Context, db bun.IDB, playerID sharedtypes.PlayerID, limit int) ([]RoundScore, error)
	GetAllScores(ctx context.Context, db bun.IDB) ([]RoundScore, error)
}
