package matchhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// HandleHoleOutcomeRecordRequest records one hole outcome. On the outcome
// that completes the match, a separate finalized event is published alongside
// the recorded event.
func (h *MatchHandlers) HandleHoleOutcomeRecordRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleHoleOutcomeRecordRequest",
		&matchevents.HoleOutcomeRecordRequestedPayloadV1{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			req := payload.(*matchevents.HoleOutcomeRecordRequestedPayloadV1)

			h.logger.InfoContext(ctx, "Received HoleOutcomeRecordRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.MatchID("match_id", req.MatchID),
				attr.Int("hole", int(req.Hole)),
				attr.String("outcome", string(req.Outcome)),
			)

			result, err := h.service.RecordHoleOutcome(ctx, req.MatchID, req.Hole, req.Outcome)
			if err != nil {
				return nil, fmt.Errorf("failed to record hole outcome: %w", err)
			}

			if result.Failure != nil {
				failureMsg, err := h.helpers.CreateResultMessage(
					msg,
					result.Failure,
					matchevents.HoleOutcomeRecordFailedV1,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to create failure message: %w", err)
				}
				return []*message.Message{failureMsg}, nil
			}

			if result.Success == nil {
				return nil, fmt.Errorf("unknown result from RecordHoleOutcome")
			}

			recordedMsg, err := h.helpers.CreateResultMessage(
				msg,
				result.Success,
				matchevents.HoleOutcomeRecordedV1,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to create success message: %w", err)
			}

			out := []*message.Message{recordedMsg}

			if result.Success.Finalized != nil {
				finalizedMsg, err := h.helpers.CreateResultMessage(
					msg,
					result.Success.Finalized,
					matchevents.MatchFinalizedV1,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to create finalized message: %w", err)
				}
				out = append(out, finalizedMsg)
			}

			return out, nil
		},
	)

	return wrappedHandler(msg)
}
