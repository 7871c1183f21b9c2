package matchservice

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// CreateMatch validates the sides and opens a new live match in progress with
// no hole outcomes.
func (s *MatchService) CreateMatch(ctx context.Context, creation MatchCreation) (CreateOperationResult, error) {
	s.logger.InfoContext(ctx, "Creating match",
		attr.ExtractCorrelationID(ctx),
		attr.String("side_a", creation.SideA),
		attr.String("side_b", creation.SideB),
		attr.String("kind", string(creation.Kind)),
	)

	return withTelemetry(s, ctx, "CreateMatch", func(ctx context.Context) (CreateOperationResult, error) {
		if err := validateCreation(creation); err != nil {
			return CreateOperationResult{
				Failure: &matchevents.MatchCreateFailedPayloadV1{
					SideA:  creation.SideA,
					SideB:  creation.SideB,
					Reason: err.Error(),
				},
			}, nil
		}

		teeTime, err := ParseTeeTime(creation.TeeTimeText, s.clock.Now())
		if err != nil {
			return CreateOperationResult{
				Failure: &matchevents.MatchCreateFailedPayloadV1{
					SideA:  creation.SideA,
					SideB:  creation.SideB,
					Reason: err.Error(),
				},
			}, nil
		}

		now := s.clock.Now().UTC()
		match := &matchdb.Match{
			ID:          sharedtypes.MatchID(uuid.New()),
			Kind:        creation.Kind,
			SideA:       creation.SideA,
			SideB:       creation.SideB,
			SideARoster: creation.SideARoster,
			SideBRoster: creation.SideBRoster,
			Course:      creation.Course,
			TeeTime:     teeTime,
			Holes:       map[sharedtypes.HoleNumber]sharedtypes.HoleOutcome{},
			Status:      sharedtypes.MatchStatusInProgress,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.repo.InsertMatch(ctx, nil, match); err != nil {
			return CreateOperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Match created",
			attr.ExtractCorrelationID(ctx),
			attr.MatchID("match_id", match.ID),
		)

		return CreateOperationResult{
			Success: &matchevents.MatchCreatedPayloadV1{
				MatchID: match.ID,
				Kind:    match.Kind,
				SideA:   match.SideA,
				SideB:   match.SideB,
				Course:  match.Course,
				TeeTime: match.TeeTime,
			},
		}, nil
	})
}

func validateCreation(creation MatchCreation) error {
	if creation.SideA == "" || creation.SideB == "" || creation.SideA == creation.SideB {
		return ErrInvalidParticipants
	}

	switch creation.Kind {
	case sharedtypes.MatchKindOrdinary, sharedtypes.MatchKindAlternatingTeam:
	case sharedtypes.MatchKindChampionship:
		// Sides are named teams here, so each needs players behind the name.
		if len(creation.SideARoster) == 0 || len(creation.SideBRoster) == 0 {
			return ErrMissingRoster
		}
	default:
		return ErrInvalidMatchKind
	}

	return nil
}
