package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/reviewsense/internal/adapter/metrics"
	"github.com/pscheid92/reviewsense/internal/domain"
	"github.com/pscheid92/reviewsense/internal/platform/config"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config

	analyzer domain.Analyzer

	httpMetrics    *metrics.HTTPMetrics
	metricsHandler http.Handler

	healthChecks []HealthCheck
	clock        clockwork.Clock
	startTime    time.Time
}

// NewServer wires the routes. reg may be nil, in which case /metrics is not served.
func NewServer(cfg *config.Config, analyzer domain.Analyzer, reg *prometheus.Registry, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := clockwork.NewRealClock()
	srv := &Server{
		echo:         e,
		config:       cfg,
		analyzer:     analyzer,
		healthChecks: healthChecks,
		clock:        clock,
		startTime:    clock.Now(),
	}
	if reg != nil {
		srv.registerMetrics(reg)
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) registerMetrics(reg *prometheus.Registry) {
	s.httpMetrics = metrics.NewHTTPMetrics(reg)
	s.metricsHandler = metrics.Handler(reg)
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port, "model_loaded", s.analyzer.ModelLoaded())
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// ServeHTTP exposes the router for in-process callers and tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
