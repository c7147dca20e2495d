package domain

import "context"

// Scorer assigns a sentiment to a text. Implementations receive both the raw and the
// normalized text and pick the one they were built for.
type Scorer interface {
	Name() string
	Score(raw, normalized string) (Label, float64, Distribution)
}

// Analyzer is the contract the HTTP layer and the CLI depend on.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
	Compare(ctx context.Context, first, second string) (Comparison, error)
	ModelLoaded() bool
}
