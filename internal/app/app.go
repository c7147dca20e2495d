package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pscheid92/reviewsense/internal/adapter/artifact"
	"github.com/pscheid92/reviewsense/internal/sentiment"
)

// readinessCanary is scored by the readiness probe; any non-empty review works.
const readinessCanary = "readiness probe review"

// Options selects the artifacts and fallbacks the engine is built with.
type Options struct {
	ModelDir  string
	Names     artifact.Names
	Fallback  string
	Stopwords string
	Observer  sentiment.Observer
}

// Service bundles the engine with the store it was built from.
type Service struct {
	Engine *sentiment.Engine
	Store  *artifact.Store

	// probe shares the scorer and normalizer with Engine but reports to no observer.
	probe *sentiment.Engine
}

// Build loads artifacts once and wires the engine. Missing or corrupt artifacts
// degrade to the fallback scorer instead of failing.
func Build(ctx context.Context, opts Options) (*Service, error) {
	filter, err := sentiment.NewStopwordFilter(opts.Stopwords)
	if err != nil {
		return nil, fmt.Errorf("failed to build stop-word filter: %w", err)
	}

	if opts.Names == (artifact.Names{}) {
		opts.Names = artifact.DefaultNames()
	}
	store := artifact.Open(ctx, opts.ModelDir, opts.Names)

	scorer, err := sentiment.SelectScorer(store.Pair(), opts.Fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to select scorer: %w", err)
	}

	var engineOpts []sentiment.Option
	if opts.Observer != nil {
		engineOpts = append(engineOpts, sentiment.WithObserver(opts.Observer))
	}
	normalizer := sentiment.NewNormalizer(filter)
	engine := sentiment.NewEngine(scorer, normalizer, engineOpts...)

	slog.Info("Sentiment engine ready",
		"scorer", engine.ScorerName(),
		"model_loaded", engine.ModelLoaded(),
		"model_dir", store.Dir(),
		"stopwords", opts.Stopwords,
	)

	return &Service{Engine: engine, Store: store, probe: sentiment.NewEngine(scorer, normalizer)}, nil
}

// CheckEngine runs one analysis end to end for readiness probes. The analysis is
// not reported to the observer.
func (s *Service) CheckEngine(ctx context.Context) error {
	if _, err := s.probe.Analyze(ctx, readinessCanary); err != nil {
		return fmt.Errorf("canary analysis failed: %w", err)
	}
	return nil
}
