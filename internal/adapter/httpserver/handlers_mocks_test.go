package httpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/reviewsense/internal/domain"
	"github.com/pscheid92/reviewsense/internal/platform/config"
)

// --- Mock implementations ---

type mockAnalyzer struct {
	analyzeFn   func(ctx context.Context, text string) (domain.Result, error)
	compareFn   func(ctx context.Context, first, second string) (domain.Comparison, error)
	modelLoaded bool
}

func (m *mockAnalyzer) Analyze(ctx context.Context, text string) (domain.Result, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, text)
	}
	return domain.Result{}, errors.New("not implemented")
}

func (m *mockAnalyzer) Compare(ctx context.Context, first, second string) (domain.Comparison, error) {
	if m.compareFn != nil {
		return m.compareFn(ctx, first, second)
	}
	return domain.Comparison{}, errors.New("not implemented")
}

func (m *mockAnalyzer) ModelLoaded() bool {
	return m.modelLoaded
}

// --- Test helpers ---

func testConfig() *config.Config {
	return &config.Config{
		Port:             "8000",
		CORSAllowOrigins: "*",
		BodyLimit:        "64K",
	}
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withConfig(mutate func(*config.Config)) func(*Server) {
	return func(s *Server) {
		mutate(s.config)
	}
}

func withMetrics(reg *prometheus.Registry) func(*Server) {
	return func(s *Server) {
		s.metricsHandler = nil
		s.httpMetrics = nil
		if reg != nil {
			s.registerMetrics(reg)
		}
	}
}

func withClock(clock clockwork.Clock) func(*Server) {
	return func(s *Server) {
		s.clock = clock
		s.startTime = clock.Now()
	}
}

func newTestServer(t *testing.T, analyzer domain.Analyzer, opts ...func(*Server)) *Server {
	t.Helper()

	clock := clockwork.NewFakeClock()
	srv := &Server{
		echo:      echo.New(),
		config:    testConfig(),
		analyzer:  analyzer,
		clock:     clock,
		startTime: clock.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()
	return srv
}
