package matchservice

import (
	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/results"
)

// MatchCreation is the input for creating a live match. TeeTimeText accepts
// natural language ("saturday 7:30am") alongside RFC3339.
type MatchCreation struct {
	Kind        sharedtypes.MatchKind
	SideA       string
	SideB       string
	SideARoster []sharedtypes.PlayerID
	SideBRoster []sharedtypes.PlayerID
	Course      sharedtypes.CourseName
	TeeTimeText string
}

// HeadToHeadRecord accumulates results between one unordered pair of side
// identities. SideA sorts before SideB.
type HeadToHeadRecord struct {
	SideA        string
	SideB        string
	WinsBySideA  int
	WinsBySideB  int
	Ties         int
	TotalMatches int
}

// CreateOperationResult is the outcome of creating a match.
type CreateOperationResult = results.OperationResult[matchevents.MatchCreatedPayloadV1, matchevents.MatchCreateFailedPayloadV1]

// HoleOperationResult is the outcome of recording one hole outcome.
type HoleOperationResult = results.OperationResult[matchevents.HoleOutcomeRecordedPayloadV1, matchevents.HoleOutcomeRecordFailedPayloadV1]
