package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// ErrPlayerNotFound is returned when no profile exists for an identity.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerDBImpl implements Repository on bun.
type PlayerDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*PlayerDBImpl)(nil)

func (r *PlayerDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *PlayerDBImpl) GetPlayer(ctx context.Context, db bun.IDB, id sharedtypes.PlayerID) (*Player, error) {
	var player Player
	err := r.conn(db).NewSelect().
		Model(&player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to fetch player %s: %w", id, err)
	}
	return &player, nil
}

func (r *PlayerDBImpl) UpsertPlayer(ctx context.Context, db bun.IDB, player *Player) error {
	player.UpdatedAt = time.Now().UTC()
	_, err := r.conn(db).NewInsert().
		Model(player).
		On("CONFLICT (id) DO UPDATE").
		Set("display_name = EXCLUDED.display_name, updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert player %s: %w", player.ID, err)
	}
	return nil
}

func (r *PlayerDBImpl) ListPlayers(ctx context.Context, db bun.IDB) ([]Player, error) {
	var players []Player
	err := r.conn(db).NewSelect().
		Model(&players).
		Order("display_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}
