package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// NoOpLogger discards everything. Used by tests and as a safe default.
var NoOpLogger = slog.New(slog.DiscardHandler)

// Config holds observability settings.
type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	MetricsAddress string // empty disables the metrics endpoint
}

// Observability bundles the logger, prometheus registry, and tracer handed to
// every module.
type Observability struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Tracer   trace.Tracer

	metricsServer *http.Server
}

// Setup builds the shared observability components. The tracer comes from the
// global otel provider; wiring an exporter is the deployment's concern.
func Setup(ctx context.Context, cfg Config) (*Observability, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("version", cfg.Version),
	)

	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("failed to register process collector: %w", err)
	}

	obs := &Observability{
		Logger:   logger,
		Registry: registry,
		Tracer:   otel.GetTracerProvider().Tracer(cfg.ServiceName),
	}

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		obs.metricsServer = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logger.Info("Serving metrics endpoint", slog.String("address", cfg.MetricsAddress))
			if err := obs.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server stopped", slog.Any("error", err))
			}
		}()
	}

	return obs, nil
}

// Close shuts down the metrics endpoint if one was started.
func (o *Observability) Close(ctx context.Context) error {
	if o.metricsServer == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return o.metricsServer.Shutdown(shutdownCtx)
}
