package handicaphandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// HandleScorecardImportRequest parses an uploaded scorecard and publishes one
// recorded event per imported row, or a single import failure.
func (h *HandicapHandlers) HandleScorecardImportRequest(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleScorecardImportRequest",
		&handicapevents.ScorecardImportRequestedPayloadV1{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			req := payload.(*handicapevents.ScorecardImportRequestedPayloadV1)

			h.logger.InfoContext(ctx, "Received ScorecardImportRequest event",
				attr.CorrelationIDFromMsg(msg),
				attr.String("file_name", req.FileName),
				attr.Int("bytes", len(req.Data)),
			)

			result, err := h.service.ImportScorecard(ctx, req.FileName, req.Data, req.Course, req.Rating, req.Slope)
			if err != nil {
				return nil, fmt.Errorf("failed to import scorecard: %w", err)
			}

			if result.Failure != nil {
				failureMsg, err := h.helpers.CreateResultMessage(
					msg,
					result.Failure,
					handicapevents.ScorecardImportFailedV1,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to create failure message: %w", err)
				}
				return []*message.Message{failureMsg}, nil
			}

			if result.Success == nil {
				return nil, fmt.Errorf("unknown result from ImportScorecard")
			}

			out := make([]*message.Message, 0, len(*result.Success))
			for i := range *result.Success {
				recorded := (*result.Success)[i]
				recordedMsg, err := h.helpers.CreateResultMessage(
					msg,
					&recorded,
					handicapevents.RoundScoreRecordedV1,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to create recorded message: %w", err)
				}
				out = append(out, recordedMsg)
			}

			return out, nil
		},
	)

	return wrappedHandler(msg)
}
