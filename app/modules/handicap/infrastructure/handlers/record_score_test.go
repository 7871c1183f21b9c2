package handicaphandlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace/noop"

	handicapservice "github.com/mulligan-crew/golftrip/app/modules/handicap/application"
	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability"
	"github.com/mulligan-crew/golftrip/internal/utils"
)

func newTestHandlers(service handicapservice.Service) Handlers {
	return NewHandicapHandlers(
		service,
		observability.NoOpLogger,
		noop.NewTracerProvider().Tracer("test"),
		utils.NewHelpers(),
		handicapservice.NoOpMetrics{},
	)
}

func newRequestMessage(t *testing.T, payload any) *message.Message {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return message.NewMessage(watermill.NewUUID(), data)
}

func TestHandleRoundScoreRecordRequest(t *testing.T) {
	testPlayer := sharedtypes.PlayerID("sam@example.com")
	request := handicapevents.RoundScoreRecordRequestedPayloadV1{
		PlayerID: testPlayer,
		Course:   "Pinehurst No. 2",
		Score:    90,
		Rating:   72.0,
		Slope:    130,
	}

	t.Run("publishes recorded event on success", func(t *testing.T) {
		service := &FakeHandicapService{
			RecordScoreFunc: func(ctx context.Context, submission handicapservice.ScoreSubmission) (handicapservice.ScoreOperationResult, error) {
				if submission.PlayerID != testPlayer {
					t.Errorf("unexpected player id %s", submission.PlayerID)
				}
				return handicapservice.ScoreOperationResult{
					Success: &handicapevents.RoundScoreRecordedPayloadV1{
						ScoreID:      sharedtypes.RoundScoreID{},
						PlayerID:     testPlayer,
						DisplayName:  "Sam",
						Course:       submission.Course,
						Score:        submission.Score,
						Rating:       submission.Rating,
						Slope:        submission.Slope,
						Differential: 15.02,
						RecordedAt:   time.Now().UTC(),
					},
				}, nil
			},
		}

		msgs, err := newTestHandlers(service).HandleRoundScoreRecordRequest(newRequestMessage(t, request))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(msgs))
		}
		if topic := msgs[0].Metadata.Get("topic"); topic != handicapevents.RoundScoreRecordedV1 {
			t.Errorf("expected topic %s, got %s", handicapevents.RoundScoreRecordedV1, topic)
		}

		var recorded handicapevents.RoundScoreRecordedPayloadV1
		if err := json.Unmarshal(msgs[0].Payload, &recorded); err != nil {
			t.Fatalf("unmarshal recorded payload: %v", err)
		}
		if recorded.Differential != 15.02 {
			t.Errorf("expected differential 15.02, got %v", recorded.Differential)
		}
	})

	t.Run("publishes failure event on handled failure", func(t *testing.T) {
		service := &FakeHandicapService{
			RecordScoreFunc: func(ctx context.Context, submission handicapservice.ScoreSubmission) (handicapservice.ScoreOperationResult, error) {
				return handicapservice.ScoreOperationResult{
					Failure: &handicapevents.RoundScoreRecordFailedPayloadV1{
						PlayerID: testPlayer,
						Course:   submission.Course,
						Reason:   "invalid slope",
					},
				}, nil
			},
		}

		msgs, err := newTestHandlers(service).HandleRoundScoreRecordRequest(newRequestMessage(t, request))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(msgs))
		}
		if topic := msgs[0].Metadata.Get("topic"); topic != handicapevents.RoundScoreRecordFailedV1 {
			t.Errorf("expected topic %s, got %s", handicapevents.RoundScoreRecordFailedV1, topic)
		}
	})

	t.Run("returns infra error for retry", func(t *testing.T) {
		service := &FakeHandicapService{
			RecordScoreFunc: func(ctx context.Context, submission handicapservice.ScoreSubmission) (handicapservice.ScoreOperationResult, error) {
				return handicapservice.ScoreOperationResult{}, errors.New("db down")
			},
		}

		msgs, err := newTestHandlers(service).HandleRoundScoreRecordRequest(newRequestMessage(t, request))
		if err == nil {
			t.Fatal("expected error")
		}
		if len(msgs) != 0 {
			t.Errorf("expected no messages, got %d", len(msgs))
		}
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		msg := message.NewMessage(watermill.NewUUID(), []byte("{not json"))
		if _, err := newTestHandlers(&FakeHandicapService{}).HandleRoundScoreRecordRequest(msg); err == nil {
			t.Fatal("expected unmarshal error")
		}
	})
}

func TestHandleScorecardImportRequest(t *testing.T) {
	request := handicapevents.ScorecardImportRequestedPayloadV1{
		FileName: "trip.xlsx",
		Data:     []byte{0x50, 0x4b},
		Course:   "Pinehurst No. 2",
		Rating:   72.0,
		Slope:    130,
	}

	t.Run("publishes one recorded event per row", func(t *testing.T) {
		service := &FakeHandicapService{
			ImportScorecardFunc: func(ctx context.Context, fileName string, data []byte, course sharedtypes.CourseName, rating sharedtypes.Rating, slope sharedtypes.Slope) (handicapservice.ImportOperationResult, error) {
				recorded := []handicapevents.RoundScoreRecordedPayloadV1{
					{PlayerID: "a@example.com", Score: 90},
					{PlayerID: "b@example.com", Score: 85},
				}
				return handicapservice.ImportOperationResult{Success: &recorded}, nil
			},
		}

		msgs, err := newTestHandlers(service).HandleScorecardImportRequest(newRequestMessage(t, request))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		for _, m := range msgs {
			if topic := m.Metadata.Get("topic"); topic != handicapevents.RoundScoreRecordedV1 {
				t.Errorf("expected topic %s, got %s", handicapevents.RoundScoreRecordedV1, topic)
			}
		}
	})

	t.Run("publishes import failure for bad sheet", func(t *testing.T) {
		service := &FakeHandicapService{
			ImportScorecardFunc: func(ctx context.Context, fileName string, data []byte, course sharedtypes.CourseName, rating sharedtypes.Rating, slope sharedtypes.Slope) (handicapservice.ImportOperationResult, error) {
				return handicapservice.ImportOperationResult{
					Failure: &handicapevents.ScorecardImportFailedPayloadV1{
						FileName: fileName,
						Reason:   "missing Player column",
					},
				}, nil
			},
		}

		msgs, err := newTestHandlers(service).HandleScorecardImportRequest(newRequestMessage(t, request))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(msgs))
		}
		if topic := msgs[0].Metadata.Get("topic"); topic != handicapevents.ScorecardImportFailedV1 {
			t.Errorf("expected topic %s, got %s", handicapevents.ScorecardImportFailedV1, topic)
		}
	})
}
