package matchservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// RecordHoleOutcome stores one hole's outcome, overwriting any prior outcome
// for that hole, then recomputes the standing and the completion predicate.
// When the outcome completes the match the finalize sequence (update match,
// insert history, delete live match) runs in the same transaction, so a crash
// can never leave the match half-retired.
func (s *MatchService) RecordHoleOutcome(ctx context.Context, matchID sharedtypes.MatchID, hole sharedtypes.HoleNumber, outcome sharedtypes.HoleOutcome) (HoleOperationResult, error) {
	s.logger.InfoContext(ctx, "Recording hole outcome",
		attr.ExtractCorrelationID(ctx),
		attr.MatchID("match_id", matchID),
		attr.Int("hole", int(hole)),
		attr.String("outcome", string(outcome)),
	)

	return withTelemetry(s, ctx, "RecordHoleOutcome", func(ctx context.Context) (HoleOperationResult, error) {
		if !validHoleNumber(hole) {
			return holeFailure(matchID, hole, ErrInvalidHoleNumber), nil
		}
		if !validHoleOutcome(outcome) {
			return holeFailure(matchID, hole, ErrInvalidHoleOutcome), nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (HoleOperationResult, error) {
			match, err := s.repo.GetMatch(ctx, db, matchID)
			if err != nil {
				if errors.Is(err, matchdb.ErrMatchNotFound) {
					return holeFailure(matchID, hole, err), nil
				}
				return HoleOperationResult{}, err
			}
			if match.Status == sharedtypes.MatchStatusCompleted {
				return holeFailure(matchID, hole, ErrMatchAlreadyCompleted), nil
			}

			if match.Holes == nil {
				match.Holes = map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{}
			}
			match.Holes[hole] = outcome

			standing := deriveStanding(match.Holes)
			match.WinsA = standing.WinsA
			match.WinsB = standing.WinsB
			match.HolesPlayed = standing.HolesPlayed
			match.UpdatedAt = s.clock.Now().UTC()

			payload := &matchevents.HoleOutcomeRecordedPayloadV1{
				MatchID:     match.ID,
				Hole:        hole,
				Outcome:     outcome,
				WinsA:       standing.WinsA,
				WinsB:       standing.WinsB,
				HolesPlayed: standing.HolesPlayed,
				Standing:    standing.Summary(match.SideA, match.SideB),
				Status:      sharedtypes.MatchStatusInProgress,
			}

			if !standing.IsComplete() {
				if err := s.repo.UpdateMatch(ctx, db, match); err != nil {
					return HoleOperationResult{}, err
				}
				return HoleOperationResult{Success: payload}, nil
			}

			match.Status = sharedtypes.MatchStatusCompleted
			record, err := s.finalize(ctx, db, match, standing)
			if err != nil {
				return HoleOperationResult{}, err
			}

			payload.Status = sharedtypes.MatchStatusCompleted
			payload.Finalized = record
			return HoleOperationResult{Success: payload}, nil
		})
	})
}

// finalize derives the history record for a completed match, inserts it, and
// removes the live match. Callers must run it inside the recording
// transaction. Insertion is idempotent on the match id so the reconciliation
// sweep can safely re-run it.
func (s *MatchService) finalize(ctx context.Context, db bun.IDB, match *matchdb.Match, standing Standing) (*matchevents.MatchFinalizedPayloadV1, error) {
	completedAt := s.clock.Now().UTC()

	record := &matchdb.MatchHistory{
		ID:          match.ID,
		Kind:        match.Kind,
		SideA:       match.SideA,
		SideB:       match.SideB,
		Tied:        standing.Tied(),
		FinalScore:  standing.FinalScore(),
		Course:      match.Course,
		TeeTime:     match.TeeTime,
		CompletedAt: completedAt,
	}
	if winner, loser, ok := standing.Winner(match.SideA, match.SideB); ok {
		record.Winner = winner
		record.Loser = loser
	}

	if err := s.repo.InsertHistory(ctx, db, record); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteMatch(ctx, db, match.ID); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Match finalized",
		attr.ExtractCorrelationID(ctx),
		attr.MatchID("match_id", match.ID),
		attr.String("final_score", record.FinalScore),
		attr.Bool("tied", record.Tied),
	)

	return &matchevents.MatchFinalizedPayloadV1{
		MatchID:     record.ID,
		Kind:        record.Kind,
		SideA:       record.SideA,
		SideB:       record.SideB,
		Winner:      record.Winner,
		Loser:       record.Loser,
		Tied:        record.Tied,
		FinalScore:  record.FinalScore,
		Course:      record.Course,
		TeeTime:     record.TeeTime,
		CompletedAt: record.CompletedAt,
	}, nil
}

func holeFailure(matchID sharedtypes.MatchID, hole sharedtypes.HoleNumber, err error) HoleOperationResult {
	return HoleOperationResult{
		Failure: &matchevents.HoleOutcomeRecordFailedPayloadV1{
			MatchID: matchID,
			Hole:    hole,
			Reason:  err.Error(),
		},
	}
}
