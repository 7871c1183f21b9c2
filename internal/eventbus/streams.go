package eventbus

import "context"

// Stream names, one per module.
const (
	HandicapStreamName = "handicap"
	MatchStreamName    = "match"
	PlayerStreamName   = "player"
)

// EnsureStreams creates the JetStream streams the modules publish to. Called
// once at startup before the router runs.
func EnsureStreams(ctx context.Context, bus EventBus) error {
	streams := map[string][]string{
		HandicapStreamName: {"handicap.>"},
		MatchStreamName:    {"match.>"},
		PlayerStreamName:   {"player.>"},
	}

	for name, subjects := range streams {
		if err := bus.CreateStream(ctx, name, subjects...); err != nil {
			return err
		}
	}
	return nil
}
