package matchservice

import (
	"testing"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

func holesFromOutcomes(outcomes ...sharedtypes.HoleOutcome) map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome {
	holes := make(map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome, len(outcomes))
	for i, outcome := range outcomes {
		holes[sharedtypes.HoleNumber(i+1)] = outcome
	}
	return holes
}

func repeatOutcome(outcome sharedtypes.HoleOutcome, n int) []sharedtypes.HoleOutcome {
	out := make([]sharedtypes.HoleOutcome, n)
	for i := range out {
		out[i] = outcome
	}
	return out
}

func TestDeriveStanding(t *testing.T) {
	holes := holesFromOutcomes(
		sharedtypes.HoleOutcomeSideA,
		sharedtypes.HoleOutcomeSideB,
		sharedtypes.HoleOutcomeHalved,
		sharedtypes.HoleOutcomeSideA,
	)

	standing := deriveStanding(holes)

	if standing.WinsA != 2 || standing.WinsB != 1 || standing.HolesPlayed != 4 {
		t.Errorf("unexpected standing %+v", standing)
	}
}

func TestStandingSummary(t *testing.T) {
	tests := []struct {
		name     string
		standing Standing
		want     string
	}{
		{"all square empty", Standing{}, "All Square"},
		{"all square level", Standing{WinsA: 3, WinsB: 3, HolesPlayed: 7}, "All Square"},
		{"side a leads", Standing{WinsA: 5, WinsB: 2, HolesPlayed: 8}, "Alex 3UP"},
		{"side b leads", Standing{WinsA: 1, WinsB: 4, HolesPlayed: 6}, "Blair 3UP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.standing.Summary("Alex", "Blair"); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStandingIsComplete(t *testing.T) {
	tests := []struct {
		name     string
		standing Standing
		want     bool
	}{
		{"fresh match", Standing{}, false},
		{"all 18 holes played", Standing{WinsA: 9, WinsB: 9, HolesPlayed: 18}, true},
		{"ten holes won clinches", Standing{WinsA: 10, WinsB: 0, HolesPlayed: 10}, true},
		// 9 up with 9 to play: lead equals remaining, still closable.
		{"nine wins does not clinch", Standing{WinsA: 9, WinsB: 0, HolesPlayed: 9}, false},
		{"ten up with eight to play", Standing{WinsA: 10, WinsB: 0, HolesPlayed: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.standing.IsComplete(); got != tt.want {
				t.Errorf("IsComplete(%+v) = %v, want %v", tt.standing, got, tt.want)
			}
		})
	}
}

func TestStandingCompletionBoundaries(t *testing.T) {
	// winsA=5, winsB=1 after 12 holes: lead 4 with 6 remaining stays open.
	open := Standing{WinsA: 5, WinsB: 1, HolesPlayed: 12}
	if open.IsComplete() {
		t.Error("lead 4 with 6 remaining should stay in progress")
	}

	// winsA=6 after 13 holes: lead 5 with 5 remaining still closable, open.
	stillOpen := Standing{WinsA: 6, WinsB: 1, HolesPlayed: 13}
	if stillOpen.IsComplete() {
		t.Error("lead 5 with 5 remaining should stay in progress")
	}

	// winsA=7 after 14 holes: lead 6 with 4 remaining is out of reach.
	closed := Standing{WinsA: 7, WinsB: 1, HolesPlayed: 14}
	if !closed.IsComplete() {
		t.Error("lead 6 with 4 remaining should complete the match")
	}
}

func TestStandingTiedOnlyAtLevelFinish(t *testing.T) {
	tied := Standing{WinsA: 6, WinsB: 6, HolesPlayed: 18}
	if !tied.Tied() {
		t.Error("level after 18 holes is a tie")
	}

	decided := Standing{WinsA: 10, WinsB: 2, HolesPlayed: 12}
	if decided.Tied() {
		t.Error("decided match is not a tie")
	}
}

func TestStandingFinalScore(t *testing.T) {
	tests := []struct {
		name     string
		standing Standing
		want     string
	}{
		{"side a wins", Standing{WinsA: 10, WinsB: 3, HolesPlayed: 13}, "10&3"},
		{"side b wins", Standing{WinsA: 2, WinsB: 10, HolesPlayed: 12}, "10&2"},
		{"tie", Standing{WinsA: 7, WinsB: 7, HolesPlayed: 18}, "7&7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.standing.FinalScore(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStandingWinner(t *testing.T) {
	winner, loser, ok := Standing{WinsA: 10, WinsB: 4}.Winner("Alex", "Blair")
	if !ok || winner != "Alex" || loser != "Blair" {
		t.Errorf("unexpected winner result %q/%q/%v", winner, loser, ok)
	}

	winner, loser, ok = Standing{WinsA: 4, WinsB: 10}.Winner("Alex", "Blair")
	if !ok || winner != "Blair" || loser != "Alex" {
		t.Errorf("unexpected winner result %q/%q/%v", winner, loser, ok)
	}

	if _, _, ok := (Standing{WinsA: 6, WinsB: 6}).Winner("Alex", "Blair"); ok {
		t.Error("tie must not report a winner")
	}
}
