package matchapplicationtests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/integration_tests/testutils"
	"github.com/mulligan-crew/golftrip/internal/observability"
)

func newMatchService(env *testutils.TestEnv) matchservice.Service {
	tracer := noop.NewTracerProvider().Tracer("test")
	return matchservice.NewMatchService(env.Matches, observability.NoOpLogger, matchservice.NoOpMetrics{}, tracer, env.DB)
}

// Plays a full match against real Postgres: create, ten holes to side A, and
// the finalize-to-history handoff in one transaction.
func TestMatchLifecycle(t *testing.T) {
	env := testutils.GetTestEnv(t)
	ctx := context.Background()
	env.Truncate(ctx, t)

	service := newMatchService(env)

	created, err := service.CreateMatch(ctx, matchservice.MatchCreation{
		Kind:   sharedtypes.MatchKindOrdinary,
		SideA:  "sam@example.com",
		SideB:  "pat@example.com",
		Course: testutils.RandomCourse(),
	})
	require.NoError(t, err)
	require.Nil(t, created.Failure)
	matchID := created.Success.MatchID

	for hole := sharedtypes.HoleNumber(1); hole <= 9; hole++ {
		result, err := service.RecordHoleOutcome(ctx, matchID, hole, sharedtypes.HoleOutcomeSideA)
		if err != nil {
			t.Fatalf("failed to record hole %d: %v", hole, err)
		}
		if result.Failure != nil {
			t.Fatalf("unexpected failure on hole %d: %s", hole, result.Failure.Reason)
		}
		if result.Success.Finalized != nil {
			t.Fatalf("match finalized prematurely on hole %d", hole)
		}
	}

	// The tenth win clinches: ten up with eight to play.
	result, err := service.RecordHoleOutcome(ctx, matchID, 10, sharedtypes.HoleOutcomeSideA)
	if err != nil {
		t.Fatalf("failed to record clinching hole: %v", err)
	}
	if result.Failure != nil {
		t.Fatalf("unexpected failure on clinching hole: %s", result.Failure.Reason)
	}
	finalized := result.Success.Finalized
	if finalized == nil {
		t.Fatal("expected match to finalize")
	}
	if finalized.Winner != "sam@example.com" || finalized.FinalScore != "10&0" {
		t.Errorf("unexpected finalize payload: %+v", finalized)
	}

	// The live row is gone; only history remains.
	if _, err := service.GetMatch(ctx, matchID); !errors.Is(err, matchdb.ErrMatchNotFound) {
		t.Errorf("expected live match to be retired, got %v", err)
	}

	history, err := service.ListHistory(ctx)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	if len(history) != 1 || history[0].ID != matchID || history[0].Winner != "sam@example.com" {
		t.Errorf("unexpected history: %+v", history)
	}

	records, err := service.HeadToHead(ctx)
	if err != nil {
		t.Fatalf("failed to aggregate head-to-head: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 head-to-head record, got %d", len(records))
	}
	rec := records[0]
	if rec.SideA != "pat@example.com" || rec.SideB != "sam@example.com" {
		t.Errorf("pair not sorted: %+v", rec)
	}
	if rec.WinsBySideB != 1 || rec.TotalMatches != 1 {
		t.Errorf("unexpected tallies: %+v", rec)
	}
}

// A completed live row left behind by a crash between status update and
// retirement is swept into history by reconciliation.
func TestReconcileStrandedMatch(t *testing.T) {
	env := testutils.GetTestEnv(t)
	ctx := context.Background()
	env.Truncate(ctx, t)

	service := newMatchService(env)

	stranded := &matchdb.Match{
		ID:     sharedtypes.MatchID(uuid.New()),
		Kind:   sharedtypes.MatchKindOrdinary,
		SideA:  "sam@example.com",
		SideB:  "pat@example.com",
		Course: "Pebble Creek",
		Holes: map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{
			1: sharedtypes.HoleOutcomeSideA, 2: sharedtypes.HoleOutcomeSideA,
			3: sharedtypes.HoleOutcomeSideA, 4: sharedtypes.HoleOutcomeSideA,
			5: sharedtypes.HoleOutcomeSideA, 6: sharedtypes.HoleOutcomeSideA,
			7: sharedtypes.HoleOutcomeSideA, 8: sharedtypes.HoleOutcomeSideA,
			9: sharedtypes.HoleOutcomeSideA, 10: sharedtypes.HoleOutcomeSideA,
		},
		WinsA:       10,
		HolesPlayed: 10,
		Status:      sharedtypes.MatchStatusCompleted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := env.Matches.InsertMatch(ctx, nil, stranded); err != nil {
		t.Fatalf("failed to insert stranded match: %v", err)
	}

	retired, err := service.ReconcileCompletedMatches(ctx)
	if err != nil {
		t.Fatalf("failed to reconcile: %v", err)
	}
	if len(retired) != 1 || retired[0] != stranded.ID {
		t.Fatalf("unexpected retired set: %v", retired)
	}

	if _, err := service.GetMatch(ctx, stranded.ID); !errors.Is(err, matchdb.ErrMatchNotFound) {
		t.Errorf("stranded match still live: %v", err)
	}

	history, err := service.ListHistory(ctx)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	if len(history) != 1 || history[0].FinalScore != "10&0" {
		t.Errorf("unexpected history after sweep: %+v", history)
	}

	// A second sweep is a no-op.
	retired, err = service.ReconcileCompletedMatches(ctx)
	if err != nil {
		t.Fatalf("failed second reconcile: %v", err)
	}
	if len(retired) != 0 {
		t.Errorf("second sweep retired matches again: %v", retired)
	}
}
