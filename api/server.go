// Package api assembles the HTTP surface of the trip server: score recording,
// leaderboard reads and exports, live match scoring, history, and the login
// flow. Everything except /auth and /healthz sits behind JWT auth.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	apihandlers "github.com/mulligan-crew/golftrip/api/handlers"
	authservice "github.com/mulligan-crew/golftrip/app/modules/auth/application"
	authhandlers "github.com/mulligan-crew/golftrip/app/modules/auth/infrastructure/handlers"
	handicapservice "github.com/mulligan-crew/golftrip/app/modules/handicap/application"
	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	playerservice "github.com/mulligan-crew/golftrip/app/modules/player/application"
	"github.com/mulligan-crew/golftrip/config"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
	"github.com/mulligan-crew/golftrip/internal/utils"
	"github.com/mulligan-crew/golftrip/pkg/jwt"
)

// Deps are the services the API serves.
type Deps struct {
	Handicap handicapservice.Service
	Match    matchservice.Service
	Players  playerservice.Service
	Auth     authservice.Service
	JWT      jwt.Service
	Bus      eventbus.EventBus
	Helpers  utils.Helpers
}

// Server is the trip HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the route tree and returns an unstarted Server.
func NewServer(cfg *config.Config, deps Deps, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(authhandlers.CORSMiddleware(cfg.HTTP.AllowedOrigins))
	r.Use(authhandlers.RateLimitMiddleware(
		authhandlers.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimitPerSec), cfg.HTTP.RateLimitBurst),
	))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Mount("/auth", apihandlers.NewAuthHandler(deps.Auth, logger).Routes())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authhandlers.JWTAuthMiddleware(deps.JWT))
		r.Mount("/handicap", apihandlers.NewHandicapHandler(deps.Handicap, deps.Bus, deps.Helpers, logger).Routes())
		r.Mount("/matches", apihandlers.NewMatchHandler(deps.Match, deps.Bus, deps.Helpers, logger).Routes())
		r.Mount("/players", apihandlers.NewPlayerHandler(deps.Players, logger).Routes())
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", attr.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
