// Package apistructs holds the request and response DTOs of the HTTP API.
// Wire event payloads live with their modules; these types exist so the HTTP
// surface can evolve without touching event versioning.
package apistructs

import (
	"time"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// RecordScoreRequest is the body of POST /scores.
type RecordScoreRequest struct {
	PlayerID sharedtypes.PlayerID   `json:"player_id"`
	Course   sharedtypes.CourseName `json:"course"`
	Score    sharedtypes.Score      `json:"score"`
	Rating   sharedtypes.Rating     `json:"rating"`
	Slope    sharedtypes.Slope      `json:"slope"`
}

// CreateMatchRequest is the body of POST /matches.
type CreateMatchRequest struct {
	Kind        sharedtypes.MatchKind  `json:"kind"`
	SideA       string                 `json:"side_a"`
	SideB       string                 `json:"side_b"`
	SideARoster []sharedtypes.PlayerID `json:"side_a_roster,omitempty"`
	SideBRoster []sharedtypes.PlayerID `json:"side_b_roster,omitempty"`
	Course      sharedtypes.CourseName `json:"course"`
	TeeTime     string                 `json:"tee_time,omitempty"`
}

// RecordHoleRequest is the body of POST /matches/{matchID}/holes.
type RecordHoleRequest struct {
	Hole    sharedtypes.HoleNumber  `json:"hole"`
	Outcome sharedtypes.HoleOutcome `json:"outcome"`
}

// MatchResponse is a live match as returned by the API.
type MatchResponse struct {
	MatchID     sharedtypes.MatchID                                `json:"match_id"`
	Kind        sharedtypes.MatchKind                              `json:"kind"`
	SideA       string                                             `json:"side_a"`
	SideB       string                                             `json:"side_b"`
	SideARoster []sharedtypes.PlayerID                             `json:"side_a_roster,omitempty"`
	SideBRoster []sharedtypes.PlayerID                             `json:"side_b_roster,omitempty"`
	Course      sharedtypes.CourseName                             `json:"course"`
	TeeTime     *time.Time                                         `json:"tee_time,omitempty"`
	Holes       map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome `json:"holes"`
	WinsA       int                                                `json:"wins_a"`
	WinsB       int                                                `json:"wins_b"`
	HolesPlayed int                                                `json:"holes_played"`
	Status      sharedtypes.MatchStatus                            `json:"status"`
}

// MatchHistoryResponse is a finished match as returned by the API.
type MatchHistoryResponse struct {
	MatchID     sharedtypes.MatchID    `json:"match_id"`
	Kind        sharedtypes.MatchKind  `json:"kind"`
	SideA       string                 `json:"side_a"`
	SideB       string                 `json:"side_b"`
	Winner      string                 `json:"winner,omitempty"`
	Loser       string                 `json:"loser,omitempty"`
	Tied        bool                   `json:"tied"`
	FinalScore  string                 `json:"final_score"`
	Course      sharedtypes.CourseName `json:"course"`
	TeeTime     *time.Time             `json:"tee_time,omitempty"`
	CompletedAt time.Time              `json:"completed_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
