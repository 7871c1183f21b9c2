package matchservice

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

func historyRecord(sideA, sideB, winner string, tied bool) matchdb.MatchHistory {
	record := matchdb.MatchHistory{
		ID:         sharedtypes.MatchID(uuid.New()),
		Kind:       sharedtypes.MatchKindOrdinary,
		SideA:      sideA,
		SideB:      sideB,
		Tied:       tied,
		FinalScore: "5&3",
	}
	if !tied {
		record.Winner = winner
		if winner == sideA {
			record.Loser = sideB
		} else {
			record.Loser = sideA
		}
	}
	return record
}

func TestHeadToHead(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeMatchRepository()

	history := []matchdb.MatchHistory{
		// A beats B twice; pair stored in either orientation.
		historyRecord("alex@example.com", "blair@example.com", "alex@example.com", false),
		historyRecord("blair@example.com", "alex@example.com", "alex@example.com", false),
		// One C vs D match.
		historyRecord("casey@example.com", "drew@example.com", "drew@example.com", false),
	}
	for i := range history {
		record := history[i]
		fake.History[record.ID] = &record
	}

	records, err := newTestMatchService(fake).HeadToHead(ctx)
	if err != nil {
		t.Fatalf("HeadToHead: %v", err)
	}

	want := []HeadToHeadRecord{
		{SideA: "alex@example.com", SideB: "blair@example.com", WinsBySideA: 2, WinsBySideB: 0, TotalMatches: 2},
		{SideA: "casey@example.com", SideB: "drew@example.com", WinsBySideA: 0, WinsBySideB: 1, TotalMatches: 1},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("head-to-head mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadToHeadCountsTies(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeMatchRepository()

	tie := historyRecord("alex@example.com", "blair@example.com", "", true)
	fake.History[tie.ID] = &tie

	records, err := newTestMatchService(fake).HeadToHead(ctx)
	if err != nil {
		t.Fatalf("HeadToHead: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.Ties != 1 || got.WinsBySideA != 0 || got.WinsBySideB != 0 || got.TotalMatches != 1 {
		t.Errorf("unexpected tie accounting: %+v", got)
	}
}

func TestHeadToHeadEmptyHistory(t *testing.T) {
	records, err := newTestMatchService(NewFakeMatchRepository()).HeadToHead(context.Background())
	if err != nil {
		t.Fatalf("HeadToHead: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
