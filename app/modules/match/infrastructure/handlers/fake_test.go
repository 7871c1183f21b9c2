package matchhandlers

import (
	"context"

	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// FakeMatchService provides a programmable stub for the match service.
type FakeMatchService struct {
	CreateMatchFunc       func(ctx context.Context, creation matchservice.MatchCreation) (matchservice.CreateOperationResult, error)
	RecordHoleOutcomeFunc func(ctx context.Context, matchID sharedtypes.MatchID, hole sharedtypes.HoleNumber, outcome sharedtypes.HoleOutcome) (matchservice.HoleOperationResult, error)
}

func (f *FakeMatchService) CreateMatch(ctx context.Context, creation matchservice.MatchCreation) (matchservice.CreateOperationResult, error) {
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, creation)
	}
	return matchservice.CreateOperationResult{}, nil
}

func (f *FakeMatchService) RecordHoleOutcome(ctx context.Context, matchID sharedtypes.MatchID, hole sharedtypes.HoleNumber, outcome sharedtypes.HoleOutcome) (matchservice.HoleOperationResult, error) {
	if f.RecordHoleOutcomeFunc != nil {
		return f.RecordHoleOutcomeFunc(ctx, matchID, hole, outcome)
	}
	return matchservice.HoleOperationResult{}, nil
}

func (f *FakeMatchService) GetMatch(ctx context.Context, matchID sharedtypes.MatchID) (*matchdb.Match, error) {
	return nil, matchdb.ErrMatchNotFound
}

func (f *FakeMatchService) ListActiveMatches(ctx context.Context) ([]matchdb.Match, error) {
	return nil, nil
}

func (f *FakeMatchService) ListHistory(ctx context.Context) ([]matchdb.MatchHistory, error) {
	return nil, nil
}

func (f *FakeMatchService) HeadToHead(ctx context.Context) ([]matchservice.HeadToHeadRecord, error) {
	return nil, nil
}

func (f *FakeMatchService) ReconcileCompletedMatches(ctx context.Context) ([]sharedtypes.MatchID, error) {
	return nil, nil
}

var _ matchservice.Service = (*FakeMatchService)(nil)
