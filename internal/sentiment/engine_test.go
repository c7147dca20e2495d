package sentiment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/reviewsense/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type observation struct {
	scorer     string
	label      domain.Label
	confidence float64
	elapsed    time.Duration
}

type mockObserver struct {
	mu    sync.Mutex
	calls []observation
}

func (m *mockObserver) ObserveAnalysis(scorer string, label domain.Label, confidence float64, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, observation{scorer, label, confidence, elapsed})
}

func (m *mockObserver) getCalls() []observation {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]observation, len(m.calls))
	copy(cp, m.calls)
	return cp
}

func newRuleEngine(opts ...Option) *Engine {
	return NewEngine(NewRuleScorer(), NewNormalizer(nil), opts...)
}

// --- Analyze ---

func TestAnalyze_EndToEndWithoutModel(t *testing.T) {
	e := newRuleEngine()

	res, err := e.Analyze(context.Background(), "I love the camera, it is amazing and fast!")
	require.NoError(t, err)

	assert.Equal(t, domain.Positive, res.Label)
	assert.GreaterOrEqual(t, res.Confidence, 0.6)
	assert.Equal(t, "love camera amazing fast", res.NormalizedText)
	assert.Equal(t, "rule", res.Scorer)
	assertValidDistribution(t, res.Distribution, res.Confidence)
	assert.False(t, e.ModelLoaded())
}

func TestAnalyze_LengthBoundary(t *testing.T) {
	e := newRuleEngine()

	tests := []struct {
		text    string
		wantErr bool
	}{
		{"hi", true},
		{"   hi   ", true},
		{"", true},
		{"\t\n", true},
		{"hi!", false},
		{"  hi!  ", false},
		{"héé", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := e.Analyze(context.Background(), tt.text)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Empty(t, invalid.Field)
			assert.Equal(t, "text must be at least 3 characters", err.Error())
		})
	}
}

func TestAnalyze_NormalizedTextAlwaysIncluded(t *testing.T) {
	e := newRuleEngine()

	res, err := e.Analyze(context.Background(), "It is what it is")
	require.NoError(t, err)
	assert.Equal(t, domain.Neutral, res.Label)
	assert.Equal(t, "", res.NormalizedText)
}

func TestAnalyze_RoundsConfidence(t *testing.T) {
	pair, _ := newFakePair(domain.Positive, 0.123456, 0.2, 0.676544)
	e := NewEngine(NewModelScorer(pair), NewNormalizer(nil))

	res, err := e.Analyze(context.Background(), "great phone")
	require.NoError(t, err)
	assert.Equal(t, 0.6765, res.Confidence)
	assert.Equal(t, 0.676544, res.Distribution[domain.Positive])
	assert.True(t, e.ModelLoaded())
	assert.Equal(t, "model", e.ScorerName())
}

func TestAnalyze_ModelReceivesNormalizedText(t *testing.T) {
	pair, vec := newFakePair(domain.Positive, 0.1, 0.1, 0.8)
	e := NewEngine(NewModelScorer(pair), NewNormalizer(nil))

	_, err := e.Analyze(context.Background(), "The screen is GREAT, 10/10!")
	require.NoError(t, err)
	require.Len(t, vec.seen, 1)
	assert.Equal(t, "screen great", vec.seen[0])
}

func TestAnalyze_NotifiesObserver(t *testing.T) {
	obs := &mockObserver{}
	clock := clockwork.NewFakeClock()
	e := newRuleEngine(WithObserver(obs), WithClock(clock))

	_, err := e.Analyze(context.Background(), "worst purchase, total waste")
	require.NoError(t, err)
	_, err = e.Analyze(context.Background(), "no")
	require.Error(t, err)

	calls := obs.getCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "rule", calls[0].scorer)
	assert.Equal(t, domain.Negative, calls[0].label)
	assert.InDelta(t, 0.8, calls[0].confidence, 1e-9)
	assert.Equal(t, time.Duration(0), calls[0].elapsed)
}

func TestAnalyze_ProbabilityInvariants(t *testing.T) {
	e := newRuleEngine()
	texts := []string{
		"The iPhone 15 camera is absolutely stunning! Best photos I've ever taken.",
		"Battery life on my iPhone 15 is disappointing. Barely lasts a full day.",
		"It's okay, nothing special about the iPhone 15 compared to iPhone 14.",
		"Galaxy S24 display is incredible! The colors are so vibrant and smooth.",
		"Overpriced for what you get. Samsung S24 is not worth the money.",
		"The S24 is decent. Does what I need but nothing groundbreaking.",
	}
	for _, text := range texts {
		res, err := e.Analyze(context.Background(), text)
		require.NoError(t, err)
		assertValidDistribution(t, res.Distribution, res.Confidence)
	}
}

// --- Compare ---

func TestCompare_MatchesIndependentAnalyze(t *testing.T) {
	e := newRuleEngine()
	ctx := context.Background()
	a := "Battery life is terrible and the phone is slow"
	b := "Best phone ever, the display is stunning"

	cmp, err := e.Compare(ctx, a, b)
	require.NoError(t, err)

	ra, err := newRuleEngine().Analyze(ctx, a)
	require.NoError(t, err)
	rb, err := newRuleEngine().Analyze(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, ra, cmp.First)
	assert.Equal(t, rb, cmp.Second)
	assert.Equal(t, domain.Negative, cmp.First.Label)
	assert.Equal(t, domain.Positive, cmp.Second.Label)
}

func TestCompare_OrderDoesNotLeak(t *testing.T) {
	e := newRuleEngine()
	ctx := context.Background()
	a := "love it"
	b := "hate it"

	ab, err := e.Compare(ctx, a, b)
	require.NoError(t, err)
	ba, err := e.Compare(ctx, b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.First, ba.Second)
	assert.Equal(t, ab.Second, ba.First)
}

func TestCompare_InvalidLegIsNamed(t *testing.T) {
	e := newRuleEngine()

	_, err := e.Compare(context.Background(), "fine phone", "no")
	require.Error(t, err)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "second", invalid.Field)

	_, err = e.Compare(context.Background(), "", "fine phone")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "first", invalid.Field)
}

func TestAnalyze_ConcurrentCallsAgree(t *testing.T) {
	e := newRuleEngine()
	text := "Smooth and fast, but expensive"
	want, err := e.Analyze(context.Background(), text)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]domain.Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = e.Analyze(context.Background(), text)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
