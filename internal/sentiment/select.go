package sentiment

import (
	"fmt"

	"github.com/pscheid92/reviewsense/internal/domain"
)

const (
	FallbackRule  = "rule"
	FallbackVader = "vader"
)

// SelectScorer picks the scorer for the lifetime of the process: the model scorer when
// a pair was loaded, otherwise the configured fallback.
func SelectScorer(pair *domain.ArtifactPair, fallback string) (domain.Scorer, error) {
	if pair != nil && pair.Vectorizer != nil && pair.Classifier != nil {
		return NewModelScorer(pair), nil
	}
	switch fallback {
	case FallbackRule, "":
		return NewRuleScorer(), nil
	case FallbackVader:
		return NewVaderScorer(), nil
	default:
		return nil, fmt.Errorf("unknown fallback scorer %q (expected %s|%s)", fallback, FallbackRule, FallbackVader)
	}
}
