package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pscheid92/reviewsense/internal/adapter/artifact"
	"github.com/pscheid92/reviewsense/internal/adapter/httpserver"
	"github.com/pscheid92/reviewsense/internal/adapter/metrics"
	"github.com/pscheid92/reviewsense/internal/app"
	"github.com/pscheid92/reviewsense/internal/platform/config"
	"github.com/pscheid92/reviewsense/internal/platform/logging"
	"github.com/pscheid92/reviewsense/internal/platform/version"
)

func runGracefulShutdown(srv *httpserver.Server, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupService(cfg *config.Config, observer *metrics.AnalysisMetrics) *app.Service {
	svc, err := app.Build(context.Background(), app.Options{
		ModelDir:  cfg.ModelDir,
		Names:     artifact.Names{Vectorizer: cfg.VectorizerFile, Classifier: cfg.ClassifierFile},
		Fallback:  cfg.FallbackScorer,
		Stopwords: cfg.Stopwords,
		Observer:  observer,
	})
	if err != nil {
		slog.Error("Failed to build sentiment engine", "error", err)
		os.Exit(1)
	}
	observer.SetModelLoaded(svc.Engine.ModelLoaded())
	return svc
}

func main() {
	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", version.Get().Version)

	reg := metrics.NewRegistry()
	analysisMetrics := metrics.NewAnalysisMetrics(reg)

	// Artifacts are loaded before the listener opens so every request sees the final scorer.
	svc := setupService(cfg, analysisMetrics)

	healthChecks := []httpserver.HealthCheck{
		{Name: "engine", Check: svc.CheckEngine},
	}
	srv := httpserver.NewServer(cfg, svc.Engine, reg, healthChecks)

	done := runGracefulShutdown(srv, cfg)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
