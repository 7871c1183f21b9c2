package handicapservice

import (
	"context"

	"github.com/uptrace/bun"

	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// ------------------------
// Fake Score Repo
// ------------------------

// FakeScoreRepository provides a programmable stub for handicapdb.Repository.
type FakeScoreRepository struct {
	trace []string

	InsertScoreFunc        func(ctx context.Context, db bun.IDB, score *handicapdb.RoundScore) error
	GetScoreFunc           func(ctx context.Context, db bun.IDB, id sharedtypes.RoundScoreID) (*handicapdb.RoundScore, error)
	GetScoresForPlayerFunc func(ctx context.Context, db bun.IDB, playerID sharedtypes.PlayerID, limit int) ([]handicapdb.RoundScore, error)
	GetAllScoresFunc       func(ctx context.Context, db bun.IDB) ([]handicapdb.RoundScore, error)
	LastInsertedScore      *handicapdb.RoundScore
}

// NewFakeScoreRepository initializes a new FakeScoreRepository with an empty trace.
func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoreRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepository) InsertScore(ctx context.Context, db bun.IDB, score *handicapdb.RoundScore) error {
	f.record("InsertScore")
	f.LastInsertedScore = score
	if f.InsertScoreFunc != nil {
		return f.InsertScoreFunc(ctx, db, score)
	}
	return nil
}

func (f *FakeScoreRepository) GetScore(ctx context.Context, db bun.IDB, id sharedtypes.RoundScoreID) (*handicapdb.RoundScore, error) {
	f.record("GetScore")
	if f.GetScoreFunc != nil {
		return f.GetScoreFunc(ctx, db, id)
	}
	return nil, handicapdb.ErrScoreNotFound
}

func (f *FakeScoreRepository) GetScoresForPlayer(ctx context.Context, db bun.IDB, playerID sharedtypes.PlayerID, limit int) ([]handicapdb.RoundScore, error) {
	f.record("GetScoresForPlayer")
	if f.GetScoresForPlayerFunc != nil {
		return f.GetScoresForPlayerFunc(ctx, db, playerID, limit)
	}
	return []handicapdb.RoundScore{}, nil
}

func (f *FakeScoreRepository) GetAllScores(ctx context.Context, db bun.IDB) ([]handicapdb.RoundScore, error) {
	f.record("GetAllScores")
	if f.GetAllScoresFunc != nil {
		return f.GetAllScoresFunc(ctx, db)
	}
	return []handicapdb.RoundScore{}, nil
}

var _ handicapdb.Repository = (*FakeScoreRepository)(nil)

// ------------------------
// Fake Player Resolver
// ------------------------

// FakePlayerService resolves display names from a fixed map, defaulting to
// the Unknown sentinel.
type FakePlayerService struct {
	Profiles map[sharedtypes.PlayerID]sharedtypes.DisplayName
	ListErr  error
}

func (f *FakePlayerService) ResolveDisplayName(ctx context.Context, id sharedtypes.PlayerID) sharedtypes.DisplayName {
	if name, ok := f.Profiles[id]; ok {
		return name
	}
	return sharedtypes.UnknownDisplayName
}

func (f *FakePlayerService) UpsertProfile(ctx context.Context, id sharedtypes.PlayerID, name sharedtypes.DisplayName) error {
	if f.Profiles == nil {
		f.Profiles = map[sharedtypes.PlayerID]sharedtypes.DisplayName{}
	}
	f.Profiles[id] = name
	return nil
}

func (f *FakePlayerService) ListProfiles(ctx context.Context) (map[sharedtypes.PlayerID]sharedtypes.DisplayName, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Profiles, nil
}
