package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/reviewsense/internal/domain"
)

// MinTextLength is the minimum number of characters after trimming whitespace.
const MinTextLength = 3

// Observer receives one callback per successful analysis.
type Observer interface {
	ObserveAnalysis(scorer string, label domain.Label, confidence float64, elapsed time.Duration)
}

// InvalidInputError reports text that is too short to analyze. Field names the
// comparison leg ("first" or "second") and is empty for a single analysis.
type InvalidInputError struct {
	Field     string
	MinLength int
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s text must be at least %d characters", e.Field, e.MinLength)
	}
	return fmt.Sprintf("text must be at least %d characters", e.MinLength)
}

func (e *InvalidInputError) Unwrap() error { return domain.ErrInvalidInput }

type Option func(*Engine)

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// Engine validates, normalizes and scores review texts. The scorer is fixed at
// construction, so every request sees the same fully initialized state.
type Engine struct {
	scorer     domain.Scorer
	normalizer *Normalizer
	observer   Observer
	clock      clockwork.Clock
}

func NewEngine(scorer domain.Scorer, normalizer *Normalizer, opts ...Option) *Engine {
	e := &Engine{
		scorer:     scorer,
		normalizer: normalizer,
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ModelLoaded reports whether the engine scores with a trained model.
func (e *Engine) ModelLoaded() bool {
	_, ok := e.scorer.(*ModelScorer)
	return ok
}

// ScorerName returns the name of the active scorer.
func (e *Engine) ScorerName() string {
	return e.scorer.Name()
}

// Analyze scores a single text. The scorer receives both the raw and the normalized
// text: the model scorer reads the normalized form, the rule scorer the raw form.
func (e *Engine) Analyze(ctx context.Context, text string) (domain.Result, error) {
	return e.analyze(ctx, text, "")
}

// Compare analyzes two texts independently of each other.
func (e *Engine) Compare(ctx context.Context, first, second string) (domain.Comparison, error) {
	a, err := e.analyze(ctx, first, "first")
	if err != nil {
		return domain.Comparison{}, err
	}
	b, err := e.analyze(ctx, second, "second")
	if err != nil {
		return domain.Comparison{}, err
	}
	return domain.Comparison{First: a, Second: b}, nil
}

func (e *Engine) analyze(ctx context.Context, text, field string) (domain.Result, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextLength {
		return domain.Result{}, &InvalidInputError{Field: field, MinLength: MinTextLength}
	}

	start := e.clock.Now()
	normalized := e.normalizer.Normalize(text)
	label, confidence, dist := e.scorer.Score(text, normalized)

	result := domain.Result{
		Label:          label,
		Confidence:     roundConfidence(confidence),
		NormalizedText: normalized,
		Distribution:   dist,
		Scorer:         e.scorer.Name(),
	}

	elapsed := e.clock.Since(start)
	if e.observer != nil {
		e.observer.ObserveAnalysis(result.Scorer, result.Label, result.Confidence, elapsed)
	}
	slog.DebugContext(ctx, "Text analyzed",
		"scorer", result.Scorer,
		"label", result.Label,
		"confidence", result.Confidence,
		"tokens", len(strings.Fields(normalized)),
	)
	return result, nil
}

func roundConfidence(c float64) float64 {
	return math.Round(c*1e4) / 1e4
}
