package matchservice

import (
	"context"

	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Service is the Match Scoring Engine contract.
type Service interface {
	CreateMatch(ctx context.Context, creation MatchCreation) (CreateOperationResult, error)
	RecordHoleOutcome(ctx context.Context, matchID sharedtypes.MatchID, hole sharedtypes.HoleNumber, outcome sharedtypes.HoleOutcome) (HoleOperationResult, error)
	GetMatch(ctx context.Context, matchID sharedtypes.MatchID) (*matchdb.Match, error)
	ListActiveMatches(ctx context.Context) ([]matchdb.Match, error)
	ListHistory(ctx context.Context) ([]matchdb.MatchHistory, error)
	HeadToHead(ctx context.Context) ([]HeadToHeadRecord, error)
	ReconcileCompletedMatches(ctx context.Context) ([]sharedtypes.MatchID, error)
}
