package matchservice

import (
	"context"

	"github.com/uptrace/bun"

	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// FakeMatchRepository is an in-memory Repository with programmable overrides.
type FakeMatchRepository struct {
	trace []string

	Matches map[sharedtypes.MatchID]*matchdb.Match
	History map[sharedtypes.MatchID]*matchdb.MatchHistory

	InsertMatchFunc   func(ctx context.Context, db bun.IDB, match *matchdb.Match) error
	GetMatchFunc      func(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*matchdb.Match, error)
	UpdateMatchFunc   func(ctx context.Context, db bun.IDB, match *matchdb.Match) error
	DeleteMatchFunc   func(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) error
	InsertHistoryFunc func(ctx context.Context, db bun.IDB, record *matchdb.MatchHistory) error
	ListHistoryFunc   func(ctx context.Context, db bun.IDB) ([]matchdb.MatchHistory, error)
}

func NewFakeMatchRepository() *FakeMatchRepository {
	return &FakeMatchRepository{
		trace:   []string{},
		Matches: map[sharedtypes.MatchID]*matchdb.Match{},
		History: map[sharedtypes.MatchID]*matchdb.MatchHistory{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeMatchRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeMatchRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeMatchRepository) InsertMatch(ctx context.Context, db bun.IDB, match *matchdb.Match) error {
	f.record("InsertMatch")
	if f.InsertMatchFunc != nil {
		return f.InsertMatchFunc(ctx, db, match)
	}
	clone := *match
	f.Matches[match.ID] = &clone
	return nil
}

func (f *FakeMatchRepository) GetMatch(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*matchdb.Match, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, db, id)
	}
	match, ok := f.Matches[id]
	if !ok {
		return nil, matchdb.ErrMatchNotFound
	}
	clone := *match
	clone.Holes = map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{}
	for hole, outcome := range match.Holes {
		clone.Holes[hole] = outcome
	}
	return &clone, nil
}

func (f *FakeMatchRepository) UpdateMatch(ctx context.Context, db bun.IDB, match *matchdb.Match) error {
	f.record("UpdateMatch")
	if f.UpdateMatchFunc != nil {
		return f.UpdateMatchFunc(ctx, db, match)
	}
	if _, ok := f.Matches[match.ID]; !ok {
		return matchdb.ErrMatchNotFound
	}
	clone := *match
	f.Matches[match.ID] = &clone
	return nil
}

func (f *FakeMatchRepository) DeleteMatch(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) error {
	f.record("DeleteMatch")
	if f.DeleteMatchFunc != nil {
		return f.DeleteMatchFunc(ctx, db, id)
	}
	delete(f.Matches, id)
	return nil
}

func (f *FakeMatchRepository) ListActiveMatches(ctx context.Context, db bun.IDB) ([]matchdb.Match, error) {
	f.record("ListActiveMatches")
	var matches []matchdb.Match
	for _, match := range f.Matches {
		if match.Status == sharedtypes.MatchStatusInProgress {
			matches = append(matches, *match)
		}
	}
	return matches, nil
}

func (f *FakeMatchRepository) ListCompletedLiveMatches(ctx context.Context, db bun.IDB) ([]matchdb.Match, error) {
	f.record("ListCompletedLiveMatches")
	var matches []matchdb.Match
	for _, match := range f.Matches {
		if match.Status == sharedtypes.MatchStatusCompleted {
			matches = append(matches, *match)
		}
	}
	return matches, nil
}

func (f *FakeMatchRepository) InsertHistory(ctx context.Context, db bun.IDB, record *matchdb.MatchHistory) error {
	f.record("InsertHistory")
	if f.InsertHistoryFunc != nil {
		return f.InsertHistoryFunc(ctx, db, record)
	}
	if _, ok := f.History[record.ID]; ok {
		return nil
	}
	clone := *record
	f.History[record.ID] = &clone
	return nil
}

func (f *FakeMatchRepository) GetHistory(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*matchdb.MatchHistory, error) {
	f.record("GetHistory")
	record, ok := f.History[id]
	if !ok {
		return nil, matchdb.ErrHistoryNotFound
	}
	clone := *record
	return &clone, nil
}

func (f *FakeMatchRepository) ListHistory(ctx context.Context, db bun.IDB) ([]matchdb.MatchHistory, error) {
	f.record("ListHistory")
	if f.ListHistoryFunc != nil {
		return f.ListHistoryFunc(ctx, db)
	}
	var records []matchdb.MatchHistory
	for _, record := range f.History {
		records = append(records, *record)
	}
	return records, nil
}

var _ matchdb.Repository = (*FakeMatchRepository)(nil)
