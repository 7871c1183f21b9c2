package playerdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Player is a trip member profile. The primary key is the email-like identity
// from the auth provider.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID          sharedtypes.PlayerID    `bun:"id,pk"`
	DisplayName sharedtypes.DisplayName `bun:"display_name,notnull"`
	CreatedAt   time.Time               `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time               `bun:"updated_at,notnull,default:current_timestamp"`
}
