package matchservice

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"

	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability"
)

func newTestMatchService(repo matchdb.Repository) *MatchService {
	return NewMatchService(repo, observability.NoOpLogger, NoOpMetrics{}, noop.NewTracerProvider().Tracer("test"), nil)
}

func seedMatch(fake *FakeMatchRepository, holes map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome) *matchdb.Match {
	standing := deriveStanding(holes)
	match := &matchdb.Match{
		ID:          sharedtypes.MatchID(uuid.New()),
		Kind:        sharedtypes.MatchKindOrdinary,
		SideA:       "alex@example.com",
		SideB:       "blair@example.com",
		Course:      "Pinehurst No. 2",
		Holes:       holes,
		WinsA:       standing.WinsA,
		WinsB:       standing.WinsB,
		HolesPlayed: standing.HolesPlayed,
		Status:      sharedtypes.MatchStatusInProgress,
	}
	fake.Matches[match.ID] = match
	return match
}

func TestRecordHoleOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("records outcome and reports standing", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{})

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 1, sharedtypes.HoleOutcomeSideA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success == nil {
			t.Fatal("expected success result")
		}
		if res.Success.WinsA != 1 || res.Success.WinsB != 0 || res.Success.HolesPlayed != 1 {
			t.Errorf("unexpected counts in %+v", res.Success)
		}
		if res.Success.Standing != "alex@example.com 1UP" {
			t.Errorf("unexpected standing %q", res.Success.Standing)
		}
		if res.Success.Status != sharedtypes.MatchStatusInProgress {
			t.Errorf("expected in_progress, got %s", res.Success.Status)
		}

		stored := fake.Matches[match.ID]
		if stored.Holes[1] != sharedtypes.HoleOutcomeSideA {
			t.Error("outcome was not persisted")
		}
	})

	t.Run("recording the same outcome twice is idempotent", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{})
		s := newTestMatchService(fake)

		first, err := s.RecordHoleOutcome(ctx, match.ID, 3, sharedtypes.HoleOutcomeSideB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := s.RecordHoleOutcome(ctx, match.ID, 3, sharedtypes.HoleOutcomeSideB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.Success.WinsA != second.Success.WinsA ||
			first.Success.WinsB != second.Success.WinsB ||
			first.Success.HolesPlayed != second.Success.HolesPlayed {
			t.Errorf("cumulative score changed: %+v vs %+v", first.Success, second.Success)
		}
	})

	t.Run("overwriting a hole corrects the count", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{
			1: sharedtypes.HoleOutcomeSideA,
		})

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 1, sharedtypes.HoleOutcomeSideB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success.WinsA != 0 || res.Success.WinsB != 1 || res.Success.HolesPlayed != 1 {
			t.Errorf("overwrite not applied: %+v", res.Success)
		}
	})

	t.Run("tenth hole won clinches and finalizes", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, holesFromOutcomes(repeatOutcome(sharedtypes.HoleOutcomeSideA, 9)...))

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 10, sharedtypes.HoleOutcomeSideA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success == nil {
			t.Fatal("expected success result")
		}
		if res.Success.Status != sharedtypes.MatchStatusCompleted {
			t.Fatalf("expected completed, got %s", res.Success.Status)
		}
		if res.Success.Finalized == nil {
			t.Fatal("expected finalized record")
		}
		if res.Success.Finalized.Winner != "alex@example.com" {
			t.Errorf("unexpected winner %q", res.Success.Finalized.Winner)
		}
		if res.Success.Finalized.FinalScore != "10&0" {
			t.Errorf("unexpected final score %q", res.Success.Finalized.FinalScore)
		}

		if _, ok := fake.Matches[match.ID]; ok {
			t.Error("live match should be retired after finalize")
		}
		if _, ok := fake.History[match.ID]; !ok {
			t.Error("history record should be written on finalize")
		}
	})

	t.Run("level after 18 holes is an explicit tie", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		outcomes := append(
			repeatOutcome(sharedtypes.HoleOutcomeSideA, 6),
			append(
				repeatOutcome(sharedtypes.HoleOutcomeSideB, 6),
				repeatOutcome(sharedtypes.HoleOutcomeHalved, 5)...,
			)...,
		)
		match := seedMatch(fake, holesFromOutcomes(outcomes...))

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 18, sharedtypes.HoleOutcomeHalved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success == nil || res.Success.Finalized == nil {
			t.Fatal("expected finalized result")
		}
		if !res.Success.Finalized.Tied {
			t.Error("expected tie")
		}
		if res.Success.Finalized.Winner != "" {
			t.Errorf("tie must not name a winner, got %q", res.Success.Finalized.Winner)
		}
		if res.Success.Finalized.FinalScore != "6&6" {
			t.Errorf("unexpected final score %q", res.Success.Finalized.FinalScore)
		}
	})

	t.Run("lead larger than remaining closes early", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		// 6 side A wins, 1 side B win, 6 halves: 13 holes, lead 5, 5 remaining.
		outcomes := append(
			repeatOutcome(sharedtypes.HoleOutcomeSideA, 6),
			append(
				repeatOutcome(sharedtypes.HoleOutcomeSideB, 1),
				repeatOutcome(sharedtypes.HoleOutcomeHalved, 6)...,
			)...,
		)
		match := seedMatch(fake, holesFromOutcomes(outcomes...))
		s := newTestMatchService(fake)

		// Hole 14 to side A: lead 6 with 4 remaining, out of reach.
		res, err := s.RecordHoleOutcome(ctx, match.ID, 14, sharedtypes.HoleOutcomeSideA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success.Status != sharedtypes.MatchStatusCompleted {
			t.Errorf("expected early close, got %s", res.Success.Status)
		}
	})

	t.Run("rejects hole out of range", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{})

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 19, sharedtypes.HoleOutcomeSideA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Failure == nil || !strings.Contains(res.Failure.Reason, "hole number") {
			t.Errorf("expected hole number failure, got %+v", res)
		}
	})

	t.Run("rejects unknown outcome", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{})

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 4, sharedtypes.HoleOutcome("eagle"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Failure == nil || !strings.Contains(res.Failure.Reason, "outcome") {
			t.Errorf("expected outcome failure, got %+v", res)
		}
	})

	t.Run("missing match is a handled failure", func(t *testing.T) {
		fake := NewFakeMatchRepository()

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, sharedtypes.MatchID(uuid.New()), 1, sharedtypes.HoleOutcomeSideA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Failure == nil || !strings.Contains(res.Failure.Reason, "not found") {
			t.Errorf("expected not-found failure, got %+v", res)
		}
	})

	t.Run("completed match rejects further outcomes", func(t *testing.T) {
		fake := NewFakeMatchRepository()
		match := seedMatch(fake, map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{})
		match.Status = sharedtypes.MatchStatusCompleted

		res, err := newTestMatchService(fake).RecordHoleOutcome(ctx, match.ID, 2, sharedtypes.HoleOutcomeSideB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Failure == nil || !strings.Contains(res.Failure.Reason, "already completed") {
			t.Errorf("expected terminal-status failure, got %+v", res)
		}
	})
}
