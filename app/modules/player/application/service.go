package playerservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	playerdb "github.com/mulligan-crew/golftrip/app/modules/player/infrastructure/repositories"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

// Metrics is the player module's metrics contract.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
}

// NoOpMetrics is the test default.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

// PlayerService implements the Service interface.
type PlayerService struct {
	repo    playerdb.Repository
	logger  *slog.Logger
	metrics Metrics
	tracer  trace.Tracer
}

func NewPlayerService(repo playerdb.Repository, logger *slog.Logger, metrics Metrics, tracer trace.Tracer) *PlayerService {
	return &PlayerService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

var _ Service = (*PlayerService)(nil)

// ResolveDisplayName looks up a player's display name, degrading to the
// Unknown sentinel when the profile is missing or the store read fails. A
// score must never be dropped because the profile join failed.
func (s *PlayerService) ResolveDisplayName(ctx context.Context, id sharedtypes.PlayerID) sharedtypes.DisplayName {
	ctx, span := s.tracer.Start(ctx, "ResolveDisplayName")
	defer span.End()

	player, err := s.repo.GetPlayer(ctx, nil, id)
	if err != nil {
		if !errors.Is(err, playerdb.ErrPlayerNotFound) {
			s.logger.WarnContext(ctx, "Profile lookup failed, using sentinel",
				attr.PlayerID("player_id", id),
				attr.Error(err),
			)
		}
		return sharedtypes.UnknownDisplayName
	}
	return player.DisplayName
}

// UpsertProfile creates or updates a player profile.
func (s *PlayerService) UpsertProfile(ctx context.Context, id sharedtypes.PlayerID, name sharedtypes.DisplayName) error {
	ctx, span := s.tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "UpsertProfile")
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "UpsertProfile", time.Since(start))
	}()

	if err := s.repo.UpsertPlayer(ctx, nil, &playerdb.Player{ID: id, DisplayName: name}); err != nil {
		s.metrics.RecordOperationFailure(ctx, "UpsertProfile")
		s.logger.ErrorContext(ctx, "Failed to upsert player profile",
			attr.PlayerID("player_id", id),
			attr.Error(err),
		)
		return err
	}

	s.metrics.RecordOperationSuccess(ctx, "UpsertProfile")
	return nil
}

// ListProfiles returns the full identity -> display name mapping. Used by the
// leaderboard aggregation to resolve names in one pass.
func (s *PlayerService) ListProfiles(ctx context.Context) (map[sharedtypes.PlayerID]sharedtypes.DisplayName, error) {
	ctx, span := s.tracer.Start(ctx, "ListProfiles")
	defer span.End()

	players, err := s.repo.ListPlayers(ctx, nil)
	if err != nil {
		return nil, err
	}

	profiles := make(map[sharedtypes.PlayerID]sharedtypes.DisplayName, len(players))
	for _, p := range players {
		profiles[p.ID] = p.DisplayName
	}
	return profiles, nil
}
