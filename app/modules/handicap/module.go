package handicap

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	handicapservice "github.com/mulligan-crew/golftrip/app/modules/handicap/application"
	handicapdb "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/repositories"
	handicaprouter "github.com/mulligan-crew/golftrip/app/modules/handicap/infrastructure/router"
	playerservice "github.com/mulligan-crew/golftrip/app/modules/player/application"
	"github.com/mulligan-crew/golftrip/config"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability"
	"github.com/mulligan-crew/golftrip/internal/utils"
)

// Module is the handicap engine: raw score intake, differential computation,
// and leaderboard aggregation.
type Module struct {
	EventBus        eventbus.EventBus
	HandicapService handicapservice.Service
	HandicapRouter  *handicaprouter.HandicapRouter
	config          *config.Config
	observability   *observability.Observability
	cancelFunc      context.CancelFunc
	helper          utils.Helpers
}

// NewHandicapModule wires the handicap repository, service, and router.
func NewHandicapModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo handicapdb.Repository,
	players playerservice.Service,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	obs.Logger.InfoContext(ctx, "handicap.NewHandicapModule called")

	metrics := observability.NewOperationMetrics(obs.Registry, "handicap")
	service := handicapservice.NewHandicapService(repo, players, obs.Logger, metrics, obs.Tracer, db)

	handicapRouter := handicaprouter.NewHandicapRouter(obs.Logger, router, eventBus, eventBus, cfg, helpers, obs.Tracer, obs.Registry)
	if err := handicapRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure handicap router: %w", err)
	}

	return &Module{
		EventBus:        eventBus,
		HandicapService: service,
		HandicapRouter:  handicapRouter,
		config:          cfg,
		observability:   obs,
		helper:          helpers,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.observability.Logger.Info("Starting handicap module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.observability.Logger.Info("Handicap module goroutine stopped")
}

func (m *Module) Close() error {
	m.observability.Logger.Info("Stopping handicap module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.observability.Logger.Info("Handicap module stopped")
	return nil
}
