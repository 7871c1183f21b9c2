package handicapservice

import (
	"context"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Service is the Handicap Engine contract.
type Service interface {
	RecordScore(ctx context.Context, submission ScoreSubmission) (ScoreOperationResult, error)
	ImportScorecard(ctx context.Context, fileName string, data []byte, course sharedtypes.CourseName, rating sharedtypes.Rating, slope sharedtypes.Slope) (ImportOperationResult, error)
	AggregateLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	GenerateLeaderboardChart(ctx context.Context, palette ChartPalette) ([]byte, error)
	ExportLeaderboardXLSX(ctx context.Context) ([]byte, error)
}
