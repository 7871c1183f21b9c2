package handicaphandlers

import (
	"context"

	handicapservice "github.com/mulligan-crew/golftrip/app/modules/handicap/application"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// FakeHandicapService provides a programmable stub for the handicap service.
type FakeHandicapService struct {
	RecordScoreFunc              func(ctx context.Context, submission handicapservice.ScoreSubmission) (handicapservice.ScoreOperationResult, error)
	ImportScorecardFunc          func(ctx context.Context, fileName string, data []byte, course sharedtypes.CourseName, rating sharedtypes.Rating, slope sharedtypes.Slope) (handicapservice.ImportOperationResult, error)
	AggregateLeaderboardFunc     func(ctx context.Context) ([]handicapservice.LeaderboardEntry, error)
	GenerateLeaderboardChartFunc func(ctx context.Context, palette handicapservice.ChartPalette) ([]byte, error)
	ExportLeaderboardXLSXFunc    func(ctx context.Context) ([]byte, error)
}

func (f *FakeHandicapService) RecordScore(ctx context.Context, submission handicapservice.ScoreSubmission) (handicapservice.ScoreOperationResult, error) {
	if f.RecordScoreFunc != nil {
		return f.RecordScoreFunc(ctx, submission)
	}
	return handicapservice.ScoreOperationResult{}, nil
}

func (f *FakeHandicapService) ImportScorecard(ctx context.Context, fileName string, data []byte, course sharedtypes.CourseName, rating sharedtypes.Rating, slope sharedtypes.Slope) (handicapservice.ImportOperationResult, error) {
	if f.ImportScorecardFunc != nil {
		return f.ImportScorecardFunc(ctx, fileName, data, course, rating, slope)
	}
	return handicapservice.ImportOperationResult{}, nil
}

func (f *FakeHandicapService) AggregateLeaderboard(ctx context.Context) ([]handicapservice.LeaderboardEntry, error) {
	if f.AggregateLeaderboardFunc != nil {
		return f.AggregateLeaderboardFunc(ctx)
	}
	return nil, nil
}

func (f *FakeHandicapService) GenerateLeaderboardChart(ctx context.Context, palette handicapservice.ChartPalette) ([]byte, error) {
	if f.GenerateLeaderboardChartFunc != nil {
		return f.GenerateLeaderboardChartFunc(ctx, palette)
	}
	return nil, nil
}

func (f *FakeHandicapService) ExportLeaderboardXLSX(ctx context.Context) ([]byte, error) {
	if f.ExportLeaderboardXLSXFunc != nil {
		return f.ExportLeaderboardXLSXFunc(ctx)
	}
	return nil, nil
}

var _ handicapservice.Service = (*FakeHandicapService)(nil)
