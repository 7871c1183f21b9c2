package handicapservice

import "errors"

var (
	// ErrInvalidSlope is returned when slope is zero or negative. The
	// differential formula divides by slope, so callers must guard.
	ErrInvalidSlope = errors.New("slope must be a positive integer")

	// ErrInvalidScore is returned for scores that cannot be a real round.
	ErrInvalidScore = errors.New("score out of plausible range")
)
