package playerdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Repository is the player profile storage contract. A nil db runs against the
// repository's base connection; passing a bun.Tx scopes the call to that
// transaction.
type Repository interface {
	GetPlayer(ctx context.Context, db bun.IDB, id sharedtypes.PlayerID) (*Player, error)
	UpsertPlayer(ctx context.Context, db bun.IDB, player *Player) error
	ListPlayers(ctx context.Context, db bun.IDB) ([]Player, error)
}
