package matchevents

import (
	"time"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Versioned event subjects for the match module.
const (
	MatchCreateRequestedV1       = "match.create.requested.v1"
	MatchCreatedV1               = "match.created.v1"
	MatchCreateFailedV1          = "match.create.failed.v1"
	HoleOutcomeRecordRequestedV1 = "match.hole.outcome.record.requested.v1"
	HoleOutcomeRecordedV1        = "match.hole.outcome.recorded.v1"
	HoleOutcomeRecordFailedV1    = "match.hole.outcome.record.failed.v1"
	MatchFinalizedV1             = "match.finalized.v1"
	MatchReconcileCompletedV1    = "match.reconcile.completed.v1"
)

// MatchCreateRequestedPayloadV1 asks for a new live match. Sides are player
// ids for ordinary/alternating formats or team names for championship format;
// rosters apply only to championship sides. TeeTimeText accepts natural
// language ("tomorrow 8am") alongside RFC3339.
type MatchCreateRequestedPayloadV1 struct {
	Kind        sharedtypes.MatchKind  `json:"kind"`
	SideA       string                 `json:"side_a"`
	SideB       string                 `json:"side_b"`
	SideARoster []sharedtypes.PlayerID `json:"side_a_roster,omitempty"`
	SideBRoster []sharedtypes.PlayerID `json:"side_b_roster,omitempty"`
	Course      sharedtypes.CourseName `json:"course"`
	TeeTimeText string                 `json:"tee_time_text,omitempty"`
}

// MatchCreatedPayloadV1 announces a new live match.
type MatchCreatedPayloadV1 struct {
	MatchID sharedtypes.MatchID    `json:"match_id"`
	Kind    sharedtypes.MatchKind  `json:"kind"`
	SideA   string                 `json:"side_a"`
	SideB   string                 `json:"side_b"`
	Course  sharedtypes.CourseName `json:"course"`
	TeeTime time.Time              `json:"tee_time,omitempty"`
}

// MatchCreateFailedPayloadV1 carries a handled create failure.
type MatchCreateFailedPayloadV1 struct {
	SideA  string `json:"side_a"`
	SideB  string `json:"side_b"`
	Reason string `json:"reason"`
}

// HoleOutcomeRecordRequestedPayloadV1 asks for one hole outcome to be
// recorded. Recording the same hole again overwrites the prior outcome.
type HoleOutcomeRecordRequestedPayloadV1 struct {
	MatchID sharedtypes.MatchID     `json:"match_id"`
	Hole    sharedtypes.HoleNumber  `json:"hole"`
	Outcome sharedtypes.HoleOutcome `json:"outcome"`
}

// HoleOutcomeRecordedPayloadV1 announces an updated match standing. Finalized
// is set when this outcome completed the match; the history record then
// travels in the same payload.
type HoleOutcomeRecordedPayloadV1 struct {
	MatchID     sharedtypes.MatchID      `json:"match_id"`
	Hole        sharedtypes.HoleNumber   `json:"hole"`
	Outcome     sharedtypes.HoleOutcome  `json:"outcome"`
	WinsA       int                      `json:"wins_a"`
	WinsB       int                      `json:"wins_b"`
	HolesPlayed int                      `json:"holes_played"`
	Standing    string                   `json:"standing"`
	Status      sharedtypes.MatchStatus  `json:"status"`
	Finalized   *MatchFinalizedPayloadV1 `json:"finalized,omitempty"`
}

// HoleOutcomeRecordFailedPayloadV1 carries a handled business failure.
type HoleOutcomeRecordFailedPayloadV1 struct {
	MatchID sharedtypes.MatchID    `json:"match_id"`
	Hole    sharedtypes.HoleNumber `json:"hole"`
	Reason  string                 `json:"reason"`
}

// MatchFinalizedPayloadV1 announces a finished match's durable history record.
type MatchFinalizedPayloadV1 struct {
	MatchID     sharedtypes.MatchID    `json:"match_id"`
	Kind        sharedtypes.MatchKind  `json:"kind"`
	SideA       string                 `json:"side_a"`
	SideB       string                 `json:"side_b"`
	Winner      string                 `json:"winner,omitempty"`
	Loser       string                 `json:"loser,omitempty"`
	Tied        bool                   `json:"tied"`
	FinalScore  string                 `json:"final_score"`
	Course      sharedtypes.CourseName `json:"course"`
	TeeTime     time.Time              `json:"tee_time,omitempty"`
	CompletedAt time.Time              `json:"completed_at"`
}

// MatchReconcileCompletedPayloadV1 reports a reconciliation sweep that retired
// stranded completed matches.
type MatchReconcileCompletedPayloadV1 struct {
	Retired []sharedtypes.MatchID `json:"retired"`
	SweptAt time.Time             `json:"swept_at"`
}
