package handicapevents

import (
	"time"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Versioned event subjects for the handicap module.
const (
	RoundScoreRecordRequestedV1 = "handicap.round.score.record.requested.v1"
	RoundScoreRecordedV1        = "handicap.round.score.recorded.v1"
	RoundScoreRecordFailedV1    = "handicap.round.score.record.failed.v1"
	ScorecardImportRequestedV1  = "handicap.scorecard.import.requested.v1"
	ScorecardImportFailedV1     = "handicap.scorecard.import.failed.v1"
	LeaderboardUpdatedV1        = "handicap.leaderboard.updated.v1"
)

// RoundScoreRecordRequestedPayloadV1 asks the handicap module to record one
// raw round score.
type RoundScoreRecordRequestedPayloadV1 struct {
	PlayerID sharedtypes.PlayerID   `json:"player_id"`
	Course   sharedtypes.CourseName `json:"course"`
	Score    sharedtypes.Score      `json:"score"`
	Rating   sharedtypes.Rating     `json:"rating"`
	Slope    sharedtypes.Slope      `json:"slope"`
}

// RoundScoreRecordedPayloadV1 announces a stored round score with its
// computed differential.
type RoundScoreRecordedPayloadV1 struct {
	ScoreID      sharedtypes.RoundScoreID `json:"score_id"`
	PlayerID     sharedtypes.PlayerID     `json:"player_id"`
	DisplayName  sharedtypes.DisplayName  `json:"display_name"`
	Course       sharedtypes.CourseName   `json:"course"`
	Score        sharedtypes.Score        `json:"score"`
	Rating       sharedtypes.Rating       `json:"rating"`
	Slope        sharedtypes.Slope        `json:"slope"`
	Differential sharedtypes.Differential `json:"differential"`
	RecordedAt   time.Time                `json:"recorded_at"`
}

// RoundScoreRecordFailedPayloadV1 carries a handled business failure.
type RoundScoreRecordFailedPayloadV1 struct {
	PlayerID sharedtypes.PlayerID   `json:"player_id"`
	Course   sharedtypes.CourseName `json:"course"`
	Reason   string                 `json:"reason"`
}

// ScorecardImportRequestedPayloadV1 asks for a spreadsheet of round scores to
// be parsed and recorded. Data is the raw xlsx bytes.
type ScorecardImportRequestedPayloadV1 struct {
	FileName string                 `json:"file_name"`
	Data     []byte                 `json:"data"`
	Course   sharedtypes.CourseName `json:"course"`
	Rating   sharedtypes.Rating     `json:"rating"`
	Slope    sharedtypes.Slope      `json:"slope"`
}

// ScorecardImportFailedPayloadV1 carries a handled import failure.
type ScorecardImportFailedPayloadV1 struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// LeaderboardEntryV1 is one leaderboard row.
type LeaderboardEntryV1 struct {
	PlayerID    sharedtypes.PlayerID    `json:"player_id"`
	DisplayName sharedtypes.DisplayName `json:"display_name"`
	Handicap    sharedtypes.Handicap    `json:"handicap"`
}

// LeaderboardUpdatedPayloadV1 announces a freshly aggregated leaderboard.
type LeaderboardUpdatedPayloadV1 struct {
	Entries     []LeaderboardEntryV1 `json:"entries"`
	GeneratedAt time.Time            `json:"generated_at"`
}
