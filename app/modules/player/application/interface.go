package playerservice

import (
	"context"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// Service is the player module's application contract. ResolveDisplayName is
// the lenient profile join used by the scoring engines: it never fails for a
// missing profile, it returns the Unknown sentinel instead.
type Service interface {
	ResolveDisplayName(ctx context.Context, id sharedtypes.PlayerID) sharedtypes.DisplayName
	UpsertProfile(ctx context.Context, id sharedtypes.PlayerID, name sharedtypes.DisplayName) error
	ListProfiles(ctx context.Context) (map[sharedtypes.PlayerID]sharedtypes.DisplayName, error)
}
