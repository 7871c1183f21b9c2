package handicaphandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	handicapservice "github.com/mulligan-crew/golftrip/app/modules/handicap/application"
	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// HandleRoundScoreRecordRequest records a single round score and publishes
// either the recorded event or a handled failure.
func (h *HandicapHandlers) HandleRoundScoreRecordRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleRoundScoreRecordRequest",
		&handicapevents.RoundScoreRecordRequestedPayloadV1{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			req := payload.(*handicapevents.RoundScoreRecordRequestedPayloadV1)

			h.logger.InfoContext(ctx, "Received RoundScoreRecordRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.PlayerID("player_id", req.PlayerID),
				attr.String("course", string(req.Course)),
				attr.Int("score", int(req.Score)),
			)

			result, err := h.service.RecordScore(ctx, handicapservice.ScoreSubmission{
				PlayerID: req.PlayerID,
				Course:   req.Course,
				Score:    req.Score,
				Rating:   req.Rating,
				Slope:    req.Slope,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to record score: %w", err)
			}

			if result.Failure != nil {
				failureMsg, err := h.helpers.CreateResultMessage(
					msg,
					result.Failure,
					handicapevents.RoundScoreRecordFailedV1,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to create failure message: %w", err)
				}
				return []*message.Message{failureMsg}, nil
			}

			if result.Success == nil {
				return nil, fmt.Errorf("unknown result from RecordScore")
			}

			successMsg, err := h.helpers.CreateResultMessage(
				msg,
				result.Success,
				handicapevents.RoundScoreRecordedV1,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to create success message: %w", err)
			}

			return []*message.Message{successMsg}, nil
		},
	)

	return wrappedHandler(msg)
}
