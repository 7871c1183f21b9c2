package matchdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Repository is the match persistence contract. A nil bun.IDB uses the base
// connection; transactions pass their bun.Tx through.
type Repository interface {
	InsertMatch(ctx context.Context, db bun.IDB, match *Match) error
	GetMatch(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*Match, error)
	UpdateMatch(ctx context.Context, db bun.IDB, match *Match) error
	DeleteMatch(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) error
	ListActiveMatches(ctx context.Context, db bun.IDB) ([]Match, error)
	ListCompletedLiveMatches(ctx context.Context, db bun.IDB) ([]Match, error)

	InsertHistory(ctx context.Context, db bun.IDB, record *MatchHistory) error
	GetHistory(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*MatchHistory, error)
	ListHistory(ctx context.Context, db bun.IDB) ([]MatchHistory, error)
}
