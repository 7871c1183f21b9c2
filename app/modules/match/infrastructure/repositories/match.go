package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// ErrMatchNotFound is returned when no live match exists for an id.
var ErrMatchNotFound = errors.New("match not found")

// ErrHistoryNotFound is returned when no history record exists for an id.
var ErrHistoryNotFound = errors.New("match history record not found")

// MatchDBImpl implements Repository on bun.
type MatchDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*MatchDBImpl)(nil)

func (r *MatchDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *MatchDBImpl) InsertMatch(ctx context.Context, db bun.IDB, match *Match) error {
	_, err := r.conn(db).NewInsert().
		Model(match).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}
	return nil
}

func (r *MatchDBImpl) GetMatch(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*Match, error) {
	var match Match
	err := r.conn(db).NewSelect().
		Model(&match).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to fetch match %s: %w", id, err)
	}
	return &match, nil
}

func (r *MatchDBImpl) UpdateMatch(ctx context.Context, db bun.IDB, match *Match) error {
	res, err := r.conn(db).NewUpdate().
		Model(match).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", match.ID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *MatchDBImpl) DeleteMatch(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) error {
	_, err := r.conn(db).NewDelete().
		Model((*Match)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	return nil
}

func (r *MatchDBImpl) ListActiveMatches(ctx context.Context, db bun.IDB) ([]Match, error) {
	var matches []Match
	err := r.conn(db).NewSelect().
		Model(&matches).
		Where("status = ?", sharedtypes.MatchStatusInProgress).
		Order("tee_time ASC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active matches: %w", err)
	}
	return matches, nil
}

// ListCompletedLiveMatches returns matches marked completed but still present
// in the live set. Under normal operation this is empty; the reconciliation
// sweep drains it.
func (r *MatchDBImpl) ListCompletedLiveMatches(ctx context.Context, db bun.IDB) ([]Match, error) {
	var matches []Match
	err := r.conn(db).NewSelect().
		Model(&matches).
		Where("status = ?", sharedtypes.MatchStatusCompleted).
		Order("updated_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed live matches: %w", err)
	}
	return matches, nil
}

func (r *MatchDBImpl) InsertHistory(ctx context.Context, db bun.IDB, record *MatchHistory) error {
	_, err := r.conn(db).NewInsert().
		Model(record).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert match history %s: %w", record.ID, err)
	}
	return nil
}

func (r *MatchDBImpl) GetHistory(ctx context.Context, db bun.IDB, id sharedtypes.MatchID) (*MatchHistory, error) {
	var record MatchHistory
	err := r.conn(db).NewSelect().
		Model(&record).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch match history %s: %w", id, err)
	}
	return &record, nil
}

func (r *MatchDBImpl) ListHistory(ctx context.Context, db bun.IDB) ([]MatchHistory, error) {
	var records []MatchHistory
	err := r.conn(db).NewSelect().
		Model(&records).
		Order("completed_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list match history: %w", err)
	}
	return records, nil
}
