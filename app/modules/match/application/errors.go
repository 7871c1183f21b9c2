package matchservice

import "errors"

var (
	// ErrInvalidHoleNumber is returned for holes outside 1-18.
	ErrInvalidHoleNumber = errors.New("hole number must be between 1 and 18")

	// ErrInvalidHoleOutcome is returned for an unrecognized outcome value.
	ErrInvalidHoleOutcome = errors.New("hole outcome must be side_a, side_b, or halved")

	// ErrMatchAlreadyCompleted is returned when recording against a completed
	// match. Completed is terminal.
	ErrMatchAlreadyCompleted = errors.New("match is already completed")

	// ErrInvalidParticipants is returned when a side identity is missing or
	// both sides are the same.
	ErrInvalidParticipants = errors.New("match requires two distinct side identities")

	// ErrInvalidMatchKind is returned for an unrecognized match kind.
	ErrInvalidMatchKind = errors.New("unknown match kind")

	// ErrMissingRoster is returned when a championship match names a team
	// without any players on it.
	ErrMissingRoster = errors.New("championship match requires a roster for both teams")

	// ErrUnparseableTeeTime is returned when a tee time text cannot be read.
	ErrUnparseableTeeTime = errors.New("could not parse tee time")
)
