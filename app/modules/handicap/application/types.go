package handicapservice

import (
	"image/color"

	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/results"
)

// ScoreSubmission is one raw round score as submitted by a caller.
type ScoreSubmission struct {
	PlayerID sharedtypes.PlayerID
	Course   sharedtypes.CourseName
	Score    sharedtypes.Score
	Rating   sharedtypes.Rating
	Slope    sharedtypes.Slope
}

// LeaderboardEntry is one row of the aggregated leaderboard, lowest handicap
// first.
type LeaderboardEntry struct {
	PlayerID    sharedtypes.PlayerID
	DisplayName sharedtypes.DisplayName
	Handicap    sharedtypes.Handicap
}

// ScoreOperationResult is the outcome of recording one round score.
type ScoreOperationResult = results.OperationResult[handicapevents.RoundScoreRecordedPayloadV1, handicapevents.RoundScoreRecordFailedPayloadV1]

// ImportOperationResult is the outcome of a scorecard import.
type ImportOperationResult = results.OperationResult[[]handicapevents.RoundScoreRecordedPayloadV1, handicapevents.ScorecardImportFailedPayloadV1]

// ChartPalette holds the colors used by leaderboard chart rendering.
type ChartPalette struct {
	Background  color.RGBA
	PrimaryLine color.RGBA
	AccentLine  color.RGBA
	TextColor   color.RGBA
}

// DefaultChartPalette is the trip's clubhouse green on cream.
var DefaultChartPalette = ChartPalette{
	Background:  color.RGBA{R: 0xfa, G: 0xf7, B: 0xef, A: 0xff},
	PrimaryLine: color.RGBA{R: 0x1e, G: 0x5b, B: 0x3a, A: 0xff},
	AccentLine:  color.RGBA{R: 0xc9, G: 0xa2, B: 0x27, A: 0xff},
	TextColor:   color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
}
