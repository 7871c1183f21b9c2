package matchservice

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// ReconcileCompletedMatches retires matches that are marked completed but
// still sit in the live set. Under normal operation finalize runs
// transactionally and this finds nothing; the sweep exists so a match can
// never stay stranded if the status and retirement ever diverge. Safe to
// re-run: history insertion is idempotent on the match id.
func (s *MatchService) ReconcileCompletedMatches(ctx context.Context) ([]sharedtypes.MatchID, error) {
	stranded, err := s.repo.ListCompletedLiveMatches(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(stranded) == 0 {
		return nil, nil
	}

	retired := make([]sharedtypes.MatchID, 0, len(stranded))
	for i := range stranded {
		match := stranded[i]
		standing := deriveStanding(match.Holes)

		err := s.inTx(ctx, func(ctx context.Context, db bun.IDB) error {
			_, err := s.finalize(ctx, db, &match, standing)
			return err
		})
		if err != nil {
			return retired, err
		}

		s.logger.InfoContext(ctx, "Reconciled stranded completed match",
			attr.MatchID("match_id", match.ID),
		)
		retired = append(retired, match.ID)
	}

	return retired, nil
}

// inTx runs fn in a transaction when a DB is wired, directly otherwise.
func (s *MatchService) inTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}
