package handicapservice

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/mulligan-crew/golftrip/app/modules/handicap/application/parsers"
	handicapevents "github.com/mulligan-crew/golftrip/app/modules/handicap/domain/events"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// ImportScorecard parses an uploaded xlsx scorecard and records every row as
// a round score at the given course. All rows commit in one transaction so a
// malformed sheet never half-applies.
func (s *HandicapService) ImportScorecard(ctx context.Context, fileName string, data []byte, course sharedtypes.CourseName, rating sharedtypes.Rating, slope sharedtypes.Slope) (ImportOperationResult, error) {
	s.logger.InfoContext(ctx, "Importing scorecard",
		attr.ExtractCorrelationID(ctx),
		attr.String("file_name", fileName),
		attr.String("course", string(course)),
	)

	return withTelemetry(s, ctx, "ImportScorecard", func(ctx context.Context) (ImportOperationResult, error) {
		parsed, err := parsers.ParseScorecardXLSX(data)
		if err != nil {
			return ImportOperationResult{
				Failure: &handicapevents.ScorecardImportFailedPayloadV1{
					FileName: fileName,
					Reason:   err.Error(),
				},
			}, nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (ImportOperationResult, error) {
			recorded := make([]handicapevents.RoundScoreRecordedPayloadV1, 0, len(parsed))
			for _, row := range parsed {
				payload, err := s.recordScoreTx(ctx, db, ScoreSubmission{
					PlayerID: row.PlayerID,
					Course:   course,
					Score:    row.Score,
					Rating:   rating,
					Slope:    slope,
				})
				if err != nil {
					return ImportOperationResult{}, err
				}
				recorded = append(recorded, *payload)
			}

			return ImportOperationResult{Success: &recorded}, nil
		})
	})
}
