package sharedtypes

import (
	"time"

	"github.com/google/uuid"
)

// PlayerID is the email-like identity issued by the auth provider. It is the
// foreign key into player profiles.
type PlayerID string

// DisplayName is a player's resolved display name.
type DisplayName string

// UnknownDisplayName is the sentinel used when a PlayerID cannot be resolved
// to a profile. Scores and matches are never dropped for a missing join.
const UnknownDisplayName DisplayName = "Unknown"

// CourseName identifies a course.
type CourseName string

// Score is a raw round score (total strokes).
type Score int

// Rating is a course rating. May be fractional.
type Rating float64

// Slope is a course slope (conventionally 55-155, never 0).
type Slope int

// Differential is a stored per-round score differential.
type Differential float64

// Handicap is a published handicap computed from differentials.
type Handicap float64

// HoleNumber is a hole on the card, 1-18.
type HoleNumber int

const (
	FirstHole HoleNumber = 1
	LastHole  HoleNumber = 18
)

// RoundScoreID identifies a recorded round score. Aliased so the uuid
// driver.Valuer, sql.Scanner, and text codecs carry through to bun columns
// and JSON payloads.
type RoundScoreID = uuid.UUID

// MatchID identifies a live match or a match history record.
type MatchID = uuid.UUID

// MatchKind distinguishes the supported match formats.
type MatchKind string

const (
	MatchKindOrdinary        MatchKind = "ordinary"
	MatchKindAlternatingTeam MatchKind = "alternating_team"
	MatchKindChampionship    MatchKind = "championship"
)

// MatchStatus is the derived status of a live match. Completed is terminal.
type MatchStatus string

const (
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

// MatchSide names one of the two sides of a match. A side is an individual
// player for ordinary/alternating formats or a team for championship format.
type MatchSide string

const (
	SideA MatchSide = "A"
	SideB MatchSide = "B"
)

// HoleOutcome is the recorded result of a single hole.
type HoleOutcome string

const (
	HoleOutcomeSideA  HoleOutcome = "side_a"
	HoleOutcomeSideB  HoleOutcome = "side_b"
	HoleOutcomeHalved HoleOutcome = "halved"
)

// Timestamp wraps time.Time for event payloads.
type Timestamp = time.Time
