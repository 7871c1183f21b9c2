// Package app wires the trip server: config, observability, Postgres, the
// NATS event bus, the module routers, and the HTTP API.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mulligan-crew/golftrip/api"
	authservice "github.com/mulligan-crew/golftrip/app/modules/auth/application"
	authnats "github.com/mulligan-crew/golftrip/app/modules/auth/infrastructure/nats"
	"github.com/mulligan-crew/golftrip/app/modules/handicap"
	"github.com/mulligan-crew/golftrip/app/modules/match"
	playerservice "github.com/mulligan-crew/golftrip/app/modules/player/application"
	"github.com/mulligan-crew/golftrip/config"
	"github.com/mulligan-crew/golftrip/internal/db/bundb"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
	"github.com/mulligan-crew/golftrip/internal/utils"
	"github.com/mulligan-crew/golftrip/pkg/jwt"
)

// App is the assembled trip server.
type App struct {
	Config        *config.Config
	Observability *observability.Observability

	db       *bundb.DBService
	eventBus eventbus.EventBus
	routers  []*message.Router

	PlayerService playerservice.Service
	Handicap      *handicap.Module
	Match         *match.Module
	AuthService   authservice.Service
	APIServer     *api.Server
}

// NewApp builds every component. Nothing is running yet; call Run.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs, err := observability.Setup(ctx, observability.Config{
		ServiceName:    "golftrip",
		Environment:    cfg.Observability.Environment,
		MetricsAddress: cfg.Observability.MetricsAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up observability: %w", err)
	}

	db, err := bundb.NewBunDBService(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	natsOpts, err := authnats.NKeyOption(cfg.NATS.NKeySeed)
	if err != nil {
		return nil, fmt.Errorf("failed to build NATS credentials: %w", err)
	}

	bus, err := eventbus.New(ctx, cfg.NATS.URL, obs.Logger, natsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	if err := eventbus.EnsureStreams(ctx, bus); err != nil {
		return nil, fmt.Errorf("failed to ensure streams: %w", err)
	}

	helpers := utils.NewHelpers()
	wmLogger := watermill.NewSlogLogger(obs.Logger)

	playerMetrics := observability.NewOperationMetrics(obs.Registry, "player")
	players := playerservice.NewPlayerService(db.Player, obs.Logger, playerMetrics, obs.Tracer)

	handicapRouter, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create handicap router: %w", err)
	}
	handicapModule, err := handicap.NewHandicapModule(ctx, cfg, obs, db.Score, players, db.GetDB(), bus, handicapRouter, helpers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handicap module: %w", err)
	}

	matchRouter, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create match router: %w", err)
	}
	matchModule, err := match.NewMatchModule(ctx, cfg, obs, db.Match, db.GetDB(), bus, matchRouter, helpers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize match module: %w", err)
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	auth := authservice.NewAuthService(cfg, jwtService, players, obs.Logger)

	server := api.NewServer(cfg, api.Deps{
		Handicap: handicapModule.HandicapService,
		Match:    matchModule.MatchService,
		Players:  players,
		Auth:     auth,
		JWT:      jwtService,
		Bus:      bus,
		Helpers:  helpers,
	}, obs.Logger)

	return &App{
		Config:        cfg,
		Observability: obs,
		db:            db,
		eventBus:      bus,
		routers:       []*message.Router{handicapRouter, matchRouter},
		PlayerService: players,
		Handicap:      handicapModule,
		Match:         matchModule,
		AuthService:   auth,
		APIServer:     server,
	}, nil
}

// Run serves until ctx is canceled, then tears everything down.
func (a *App) Run(ctx context.Context) error {
	logger := a.Observability.Logger

	for _, r := range a.routers {
		router := r
		go func() {
			if err := router.Run(ctx); err != nil {
				logger.Error("Message router stopped", attr.Error(err))
			}
		}()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go a.Handicap.Run(ctx, &wg)
	go a.Match.Run(ctx, &wg)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.APIServer.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	}

	wg.Wait()
	return nil
}

// Close shuts down every component in reverse dependency order.
func (a *App) Close(ctx context.Context) error {
	logger := a.Observability.Logger

	if err := a.APIServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server", attr.Error(err))
	}

	if err := a.Handicap.Close(); err != nil {
		logger.Error("Failed to close handicap module", attr.Error(err))
	}
	if err := a.Match.Close(); err != nil {
		logger.Error("Failed to close match module", attr.Error(err))
	}

	for _, r := range a.routers {
		if err := r.Close(); err != nil {
			logger.Error("Failed to close message router", attr.Error(err))
		}
	}

	if err := a.eventBus.Close(); err != nil {
		logger.Error("Failed to close event bus", attr.Error(err))
	}
	if err := a.db.Close(); err != nil {
		logger.Error("Failed to close database", attr.Error(err))
	}

	return a.Observability.Close(ctx)
}
