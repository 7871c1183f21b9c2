package handicapdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// RoundScore is one submitted round with its stored differential. Rows are
// immutable once created: the differential is computed at write time so
// history stays stable even if a course's rating or slope changes later.
type RoundScore struct {
	bun.BaseModel `bun:"table:round_scores,alias:rs"`

	ID           sharedtypes.RoundScoreID `bun:"id,pk,type:uuid"`
	PlayerID     sharedtypes.PlayerID     `bun:"player_id,notnull"`
	Course       sharedtypes.CourseName   `bun:"course,notnull"`
	Score        sharedtypes.Score        `bun:"score,notnull"`
	Rating       sharedtypes.Rating       `bun:"rating,notnull"`
	Slope        sharedtypes.Slope        `bun:"slope,notnull"`
	Differential sharedtypes.Differential `bun:"differential,notnull"`
	CreatedAt    time.Time                `bun:"created_at,notnull,default:current_timestamp"`
}
