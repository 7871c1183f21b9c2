package handicapdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// ErrScoreNotFound is returned when no round score exists for an id.
var ErrScoreNotFound = errors.New("round score not found")

// ScoreDBImpl implements Repository on bun.
type ScoreDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ScoreDBImpl)(nil)

func (r *ScoreDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *ScoreDBImpl) InsertScore(ctx context.Context, db bun.IDB, score *RoundScore) error {
	_, err := r.conn(db).NewInsert().
		Model(score).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert round score for player %s: %w", score.PlayerID, err)
	}
	return nil
}

func (r *ScoreDBImpl) GetScore(ctx context.Context, db bun.IDB, id sharedtypes.RoundScoreID) (*RoundScore, error) {
	var score RoundScore
	err := r.conn(db).NewSelect().
		Model(&score).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to fetch round score %s: %w", id, err)
	}
	return &score, nil
}

// GetScoresForPlayer returns the player's scores newest first. A limit of 0
// returns everything.
func (r *ScoreDBImpl) GetScoresForPlayer(ctx context.Context, db bun.IDB, playerID sharedtypes.PlayerID, limit int) ([]RoundScore, error) {
	q := r.conn(db).NewSelect().
		Model((*RoundScore)(nil)).
		Where("player_id = ?", playerID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var scores []RoundScore
	if err := q.Scan(ctx, &scores); err != nil {
		return nil, fmt.Errorf("failed to fetch scores for player %s: %w", playerID, err)
	}
	return scores, nil
}

func (r *ScoreDBImpl) GetAllScores(ctx context.Context, db bun.IDB) ([]RoundScore, error) {
	var scores []RoundScore
	err := r.conn(db).NewSelect().
		Model(&scores).
		Order("player_id ASC", "created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all scores: %w", err)
	}
	return scores, nil
}
