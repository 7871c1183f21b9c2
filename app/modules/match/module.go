package match

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	matchqueue "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/queue"
	matchdb "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/repositories"
	matchrouter "github.com/mulligan-crew/golftrip/app/modules/match/infrastructure/router"
	"github.com/mulligan-crew/golftrip/config"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability"
	"github.com/mulligan-crew/golftrip/internal/utils"
)

// Module is the match scoring engine: live matches, hole-by-hole standing,
// completion detection, finalize-to-history, and head-to-head aggregation.
type Module struct {
	EventBus      eventbus.EventBus
	MatchService  matchservice.Service
	MatchRouter   *matchrouter.MatchRouter
	QueueService  matchqueue.QueueService
	config        *config.Config
	observability *observability.Observability
	cancelFunc    context.CancelFunc
	helper        utils.Helpers
}

// NewMatchModule wires the match repository, service, router, and the
// reconciliation queue.
func NewMatchModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo matchdb.Repository,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	obs.Logger.InfoContext(ctx, "match.NewMatchModule called")

	metrics := observability.NewOperationMetrics(obs.Registry, "match")
	service := matchservice.NewMatchService(repo, obs.Logger, metrics, obs.Tracer, db)

	matchRouter := matchrouter.NewMatchRouter(obs.Logger, router, eventBus, eventBus, cfg, helpers, obs.Tracer, obs.Registry)
	if err := matchRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure match router: %w", err)
	}

	queueService, err := matchqueue.NewService(ctx, obs.Logger, cfg.Postgres.DSN, service, eventBus, helpers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize match queue: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		MatchService:  service,
		MatchRouter:   matchRouter,
		QueueService:  queueService,
		config:        cfg,
		observability: obs,
		helper:        helpers,
	}, nil
}

// Run starts the reconciliation queue and keeps the module alive until the
// context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.observability.Logger.Info("Starting match module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.QueueService.Start(ctx); err != nil {
		m.observability.Logger.Error("Failed to start match queue service")
	}

	<-ctx.Done()
	m.observability.Logger.Info("Match module goroutine stopped")
}

func (m *Module) Close() error {
	m.observability.Logger.Info("Stopping match module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if err := m.QueueService.Stop(context.Background()); err != nil {
		m.observability.Logger.Error("Failed to stop match queue service")
	}
	m.observability.Logger.Info("Match module stopped")
	return nil
}
