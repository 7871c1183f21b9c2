package playerservice

import (
	"context"

	"github.com/uptrace/bun"

	playerdb "github.com/mulligan-crew/golftrip/app/modules/player/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// FakePlayerRepository provides a programmable stub for playerdb.Repository.
type FakePlayerRepository struct {
	trace []string

	GetPlayerFunc    func(ctx context.Context, db bun.IDB, id sharedtypes.PlayerID) (*playerdb.Player, error)
	UpsertPlayerFunc func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	ListPlayersFunc  func(ctx context.Context, db bun.IDB) ([]playerdb.Player, error)
}

func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{trace: []string{}}
}

func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) GetPlayer(ctx context.Context, db bun.IDB, id sharedtypes.PlayerID) (*playerdb.Player, error) {
	f.record("GetPlayer")
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, db, id)
	}
	return nil, playerdb.ErrPlayerNotFound
}

func (f *FakePlayerRepository) UpsertPlayer(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("UpsertPlayer")
	if f.UpsertPlayerFunc != nil {
		return f.UpsertPlayerFunc(ctx, db, player)
	}
	return nil
}

func (f *FakePlayerRepository) ListPlayers(ctx context.Context, db bun.IDB) ([]playerdb.Player, error) {
	f.record("ListPlayers")
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx, db)
	}
	return []playerdb.Player{}, nil
}

var _ playerdb.Repository = (*FakePlayerRepository)(nil)
