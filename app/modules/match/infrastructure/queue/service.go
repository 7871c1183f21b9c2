package matchqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	matchservice "github.com/mulligan-crew/golftrip/app/modules/match/application"
	matchevents "github.com/mulligan-crew/golftrip/app/modules/match/domain/events"
	"github.com/mulligan-crew/golftrip/internal/eventbus"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
	"github.com/mulligan-crew/golftrip/internal/utils"
)

// reconcileInterval is how often the sweep runs. Finalize itself is
// transactional; the sweep only catches a status/retirement divergence, so a
// generous interval is enough.
const reconcileInterval = 5 * time.Minute

// QueueService runs the periodic match reconciliation job on River.
type QueueService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Service is the River-backed QueueService.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ QueueService = (*Service)(nil)

// NewService builds the River client with the reconciliation worker and its
// periodic trigger. River requires pgx, so it gets its own pool on the same
// DSN as the bun connection.
func NewService(ctx context.Context, logger *slog.Logger, dsn string, service matchservice.Service, eventBus eventbus.EventBus, helpers utils.Helpers) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	ctxLogger.Info("Initializing match queue service")

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewReconcileWorker(ctxLogger, service, eventBus, helpers))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			"match":            {MaxWorkers: 5},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(reconcileInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return ReconcileJob{}, &river.InsertOpts{Queue: "match"}
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &Service{
		client: riverClient,
		pool:   pool,
		logger: ctxLogger,
	}, nil
}

// Start starts the River client.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting match queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

// Stop drains the River client and closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info("Stopping match queue service")
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}

// ReconcileWorker executes one reconciliation sweep per job.
type ReconcileWorker struct {
	river.WorkerDefaults[ReconcileJob]

	logger   *slog.Logger
	service  matchservice.Service
	eventBus eventbus.EventBus
	helpers  utils.Helpers
}

// NewReconcileWorker creates the reconciliation worker.
func NewReconcileWorker(logger *slog.Logger, service matchservice.Service, eventBus eventbus.EventBus, helpers utils.Helpers) *ReconcileWorker {
	return &ReconcileWorker{
		logger:   logger,
		service:  service,
		eventBus: eventBus,
		helpers:  helpers,
	}
}

// Work runs the sweep and announces any retired matches on the event bus.
func (w *ReconcileWorker) Work(ctx context.Context, job *river.Job[ReconcileJob]) error {
	retired, err := w.service.ReconcileCompletedMatches(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "Reconciliation sweep failed", attr.Error(err))
		return fmt.Errorf("reconciliation sweep: %w", err)
	}
	if len(retired) == 0 {
		return nil
	}

	w.logger.InfoContext(ctx, "Reconciliation sweep retired stranded matches",
		attr.Int("count", len(retired)),
	)

	msg, err := w.helpers.CreateNewMessage(&matchevents.MatchReconcileCompletedPayloadV1{
		Retired: retired,
		SweptAt: time.Now().UTC(),
	}, matchevents.MatchReconcileCompletedV1)
	if err != nil {
		return fmt.Errorf("failed to create reconcile message: %w", err)
	}
	if err := w.eventBus.Publish(matchevents.MatchReconcileCompletedV1, msg); err != nil {
		return fmt.Errorf("failed to publish reconcile event: %w", err)
	}
	return nil
}
