package matchservice

import (
	"fmt"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

const totalHoles = 18

// holesNeededToClinch is the win count that guarantees a match regardless of
// the remaining holes: more than half of 18.
const holesNeededToClinch = 9

// Standing is the cumulative state derived from a match's hole outcomes. The
// derivation is order-independent: only the set of recorded outcomes matters.
type Standing struct {
	WinsA       int
	WinsB       int
	HolesPlayed int
}

// deriveStanding counts wins per side across all recorded holes. Halved holes
// count toward holesPlayed but toward neither side.
func deriveStanding(holes map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome) Standing {
	var s Standing
	for _, outcome := range holes {
		switch outcome {
		case sharedtypes.HoleOutcomeSideA:
			s.WinsA++
		case sharedtypes.HoleOutcomeSideB:
			s.WinsB++
		}
		s.HolesPlayed++
	}
	return s
}

// Summary reports the standing as "All Square" or "<leader> <n>UP".
func (s Standing) Summary(sideA, sideB string) string {
	switch {
	case s.WinsA == s.WinsB:
		return "All Square"
	case s.WinsA > s.WinsB:
		return fmt.Sprintf("%s %dUP", sideA, s.WinsA-s.WinsB)
	default:
		return fmt.Sprintf("%s %dUP", sideB, s.WinsB-s.WinsA)
	}
}

// IsComplete evaluates the completion predicate: all 18 holes played, a side
// with an unbeatable majority, or a lead larger than the holes remaining.
func (s Standing) IsComplete() bool {
	if s.HolesPlayed >= totalHoles {
		return true
	}
	if s.WinsA > holesNeededToClinch || s.WinsB > holesNeededToClinch {
		return true
	}
	lead := s.WinsA - s.WinsB
	if lead < 0 {
		lead = -lead
	}
	return lead > totalHoles-s.HolesPlayed
}

// Tied reports whether a completed standing finished level. Only reachable by
// playing out all 18 holes; an early close always has a leader.
func (s Standing) Tied() bool {
	return s.WinsA == s.WinsB
}

// FinalScore formats the winner-first score string, e.g. "5&3". A tie yields
// the level score, e.g. "6&6".
func (s Standing) FinalScore() string {
	if s.WinsA >= s.WinsB {
		return fmt.Sprintf("%d&%d", s.WinsA, s.WinsB)
	}
	return fmt.Sprintf("%d&%d", s.WinsB, s.WinsA)
}

// Winner returns the winning and losing side identities. ok is false on a tie.
func (s Standing) Winner(sideA, sideB string) (winner, loser string, ok bool) {
	switch {
	case s.WinsA > s.WinsB:
		return sideA, sideB, true
	case s.WinsB > s.WinsA:
		return sideB, sideA, true
	default:
		return "", "", false
	}
}

func validHoleNumber(hole sharedtypes.HoleNumber) bool {
	return hole >= sharedtypes.FirstHole && hole <= sharedtypes.LastHole
}

func validHoleOutcome(outcome sharedtypes.HoleOutcome) bool {
	switch outcome {
	case sharedtypes.HoleOutcomeSideA, sharedtypes.HoleOutcomeSideB, sharedtypes.HoleOutcomeHalved:
		return true
	default:
		return false
	}
}
