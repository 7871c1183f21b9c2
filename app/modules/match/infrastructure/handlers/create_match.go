package matchhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// HandleMatchCreateRequest opens a new live match and publishes the created
// event or a handled failure.
func (h *MatchHandlers) HandleMatchCreateRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleMatchCreateRequest",
		&matchevents.MatchCreateRequestedPayloadV1{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			req := payload.(*matchevents.MatchCreateRequestedPayloadV1)

			h.logger.InfoContext(ctx, "Received MatchCreateRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("side_a", req.SideA),
				attr.String("side_b", req.SideB),
				attr.String("kind", string(req.Kind)),
			)

			result, err := h.service.CreateMatch(ctx, matchservice.MatchCreation{
				Kind:        req.Kind,
				SideA:       req.SideA,
				SideB:       req.SideB,
				SideARoster: req.SideARoster,
				SideBRoster: req.SideBRoster,
				Course:      req.Course,
				TeeTimeText: req.TeeTimeText,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create match: %w", err)
			}

			if result.Failure != nil {
				failureMsg, err := h.helpers.CreateResultMessage(
					msg,
					result.Failure,
					matchevents.MatchCreateFailedV1,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to create failure message: %w", err)
				}
				return []*message.Message{failureMsg}, nil
			}

			if result.Success == nil {
				return nil, fmt.Errorf("unknown result from CreateMatch")
			}

			successMsg, err := h.helpers.CreateResultMessage(
				msg,
				result.Success,
				matchevents.MatchCreatedV1,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to create success message: %w", err)
			}

			return []*message.Message{successMsg}, nil
		},
	)

	return wrappedHandler(msg)
}
