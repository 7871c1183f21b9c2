package matchdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Match is a live match. A side identity is a player id for ordinary and
// alternating formats or a team name for championship format; championship
// sides also carry a roster. Status is derived from the hole outcomes and is
// never set directly by a caller.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID          sharedtypes.MatchID                               `bun:"id,pk,type:uuid"`
	Kind        sharedtypes.MatchKind                             `bun:"kind,notnull"`
	SideA       string                                            `bun:"side_a,notnull"`
	SideB       string                                            `bun:"side_b,notnull"`
	SideARoster []sharedtypes.PlayerID                            `bun:"side_a_roster,type:jsonb,nullzero"`
	SideBRoster []sharedtypes.PlayerID                            `bun:"side_b_roster,type:jsonb,nullzero"`
	Course      sharedtypes.CourseName                            `bun:"course,notnull"`
	TeeTime     time.Time                                         `bun:"tee_time,nullzero"`
	Holes       map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome `bun:"holes,type:jsonb,notnull"`
	WinsA       int                                               `bun:"wins_a,notnull"`
	WinsB       int                                               `bun:"wins_b,notnull"`
	HolesPlayed int                                               `bun:"holes_played,notnull"`
	Status      sharedtypes.MatchStatus                           `bun:"status,notnull"`
	CreatedAt   time.Time                                         `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time                                         `bun:"updated_at,notnull,default:current_timestamp"`
}

// MatchHistory is the sole durable artifact of a finished match. The live
// Match row is deleted in the same transaction that inserts this record.
type MatchHistory struct {
	bun.BaseModel `bun:"table:match_history,alias:mh"`

	ID          sharedtypes.MatchID    `bun:"id,pk,type:uuid"`
	Kind        sharedtypes.MatchKind  `bun:"kind,notnull"`
	SideA       string                 `bun:"side_a,notnull"`
	SideB       string                 `bun:"side_b,notnull"`
	Winner      string                 `bun:"winner,nullzero"`
	Loser       string                 `bun:"loser,nullzero"`
	Tied        bool                   `bun:"tied,notnull"`
	FinalScore  string                 `bun:"final_score,notnull"`
	Course      sharedtypes.CourseName `bun:"course,notnull"`
	TeeTime     time.Time              `bun:"tee_time,nullzero"`
	CompletedAt time.Time              `bun:"completed_at,notnull"`
	CreatedAt   time.Time              `bun:"created_at,notnull,default:current_timestamp"`
}
