package handicapservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// RecordScore computes the differential for a submitted round, stamps player
// identity and time, and appends an immutable round score to the store. An
// unresolvable player identity degrades to the Unknown display name rather
// than failing: data is never dropped for a missing profile join.
func (s *HandicapService) RecordScore(ctx context.Context, submission ScoreSubmission) (ScoreOperationResult, error) {
	s.logger.InfoContext(ctx, "Recording round score",
		attr.ExtractCorrelationID(ctx),
		attr.PlayerID("player_id", submission.PlayerID),
		attr.String("course", string(submission.Course)),
		attr.Int("score", int(submission.Score)),
	)

	return withTelemetry(s, ctx, "RecordScore", func(ctx context.Context) (ScoreOperationResult, error) {
		differential, err := ComputeDifferential(submission.Score, submission.Rating, submission.Slope)
		if err != nil {
			if errors.Is(err, ErrInvalidSlope) {
				return ScoreOperationResult{
					Failure: &handicapevents.RoundScoreRecordFailedPayloadV1{
						PlayerID: submission.PlayerID,
						Course:   submission.Course,
						Reason:   err.Error(),
					},
				}, nil
			}
			return ScoreOperationResult{}, err
		}

		displayName := s.players.ResolveDisplayName(ctx, submission.PlayerID)

		score := &handicapdb.RoundScore{
			ID:           sharedtypes.RoundScoreID(uuid.New()),
			PlayerID:     submission.PlayerID,
			Course:       submission.Course,
			Score:        submission.Score,
			Rating:       submission.Rating,
			Slope:        submission.Slope,
			Differential: differential,
			CreatedAt:    s.clock.Now().UTC(),
		}

		if err := s.repo.InsertScore(ctx, nil, score); err != nil {
			return ScoreOperationResult{}, err
		}

		return ScoreOperationResult{
			Success: &handicapevents.RoundScoreRecordedPayloadV1{
				ScoreID:      score.ID,
				PlayerID:     score.PlayerID,
				DisplayName:  displayName,
				Course:       score.Course,
				Score:        score.Score,
				Rating:       score.Rating,
				Slope:        score.Slope,
				Differential: score.Differential,
				RecordedAt:   score.CreatedAt,
			},
		}, nil
	})
}

// recordScoreTx is RecordScore's storage step scoped to a transaction,
// used by the scorecard import so a bad row aborts the whole sheet.
func (s *HandicapService) recordScoreTx(ctx context.Context, db bun.IDB, submission ScoreSubmission) (*handicapevents.RoundScoreRecordedPayloadV1, error) {
	differential, err := ComputeDifferential(submission.Score, submission.Rating, submission.Slope)
	if err != nil {
		return nil, err
	}

	displayName := s.players.ResolveDisplayName(ctx, submission.PlayerID)

	score := &handicapdb.RoundScore{
		ID:           sharedtypes.RoundScoreID(uuid.New()),
		PlayerID:     submission.PlayerID,
		Course:       submission.Course,
		Score:        submission.Score,
		Rating:       submission.Rating,
		Slope:        submission.Slope,
		Differential: differential,
		CreatedAt:    s.clock.Now().UTC(),
	}

	if err := s.repo.InsertScore(ctx, db, score); err != nil {
		return nil, err
	}

	return &handicapevents.RoundScoreRecordedPayloadV1{
		ScoreID:      score.ID,
		PlayerID:     score.PlayerID,
		DisplayName:  displayName,
		Course:       score.Course,
		Score:        score.Score,
		Rating:       score.Rating,
		Slope:        score.Slope,
		Differential: score.Differential,
		RecordedAt:   score.CreatedAt,
	}, nil
}
