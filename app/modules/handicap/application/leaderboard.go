package handicapservice

import (
	"context"
	"sort"

	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

const (
	// recentScoresWindow is how many of a player's most recent scores are
	// considered.
	recentScoresWindow = 20
	// bestDifferentialCount is how many of the lowest differentials within
	// the window are averaged.
	bestDifferentialCount = 8
)

// AggregateLeaderboard recomputes the leaderboard from the full score set.
// Per player: the lowest min(8, n) differentials among the most recent 20
// scores are averaged and rounded to two decimals. Players without a
// resolvable display name are excluded. Entries sort ascending by handicap,
// ties broken by player identity so the order is deterministic.
func (s *HandicapService) AggregateLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	ctx, span := s.tracer.Start(ctx, "AggregateLeaderboard")
	defer span.End()

	scores, err := s.repo.GetAllScores(ctx, nil)
	if err != nil {
		return nil, err
	}

	profiles, err := s.players.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	entries := aggregateLeaderboard(scores, profiles)

	s.logger.InfoContext(ctx, "Leaderboard aggregated",
		attr.ExtractCorrelationID(ctx),
		attr.Int("num_scores", len(scores)),
		attr.Int("num_entries", len(entries)),
	)

	return entries, nil
}

// aggregateLeaderboard is the pure aggregation over an already-loaded score
// set. Scores must be ordered newest first per player, which is how the
// repository returns them.
func aggregateLeaderboard(scores []handicapdb.RoundScore, profiles map[sharedtypes.PlayerID]sharedtypes.DisplayName) []LeaderboardEntry {
	byPlayer := make(map[sharedtypes.PlayerID][]sharedtypes.Differential)
	for _, score := range scores {
		if len(byPlayer[score.PlayerID]) >= recentScoresWindow {
			continue
		}
		byPlayer[score.PlayerID] = append(byPlayer[score.PlayerID], score.Differential)
	}

	entries := make([]LeaderboardEntry, 0, len(byPlayer))
	for playerID, differentials := range byPlayer {
		displayName, ok := profiles[playerID]
		if !ok || displayName == "" || displayName == sharedtypes.UnknownDisplayName {
			continue
		}
		if len(differentials) == 0 {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			PlayerID:    playerID,
			DisplayName: displayName,
			Handicap:    computeHandicap(differentials),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Handicap != entries[j].Handicap {
			return entries[i].Handicap < entries[j].Handicap
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	return entries
}

// computeHandicap averages the lowest min(8, n) differentials, rounded to two
// decimals.
func computeHandicap(differentials []sharedtypes.Differential) sharedtypes.Handicap {
	sorted := make([]sharedtypes.Differential, len(differentials))
	copy(sorted, differentials)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	take := bestDifferentialCount
	if len(sorted) < take {
		take = len(sorted)
	}

	var sum float64
	for _, d := range sorted[:take] {
		sum += float64(d)
	}

	return sharedtypes.Handicap(round2(sum / float64(take)))
}
