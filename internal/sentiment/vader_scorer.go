package sentiment

import (
	"github.com/jonreiter/govader"
	"github.com/pscheid92/reviewsense/internal/domain"
)

// VaderScorer is an alternative fallback built on the VADER lexicon. It reads the raw
// text, since VADER uses capitalization and punctuation as intensity cues.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (*VaderScorer) Name() string { return "vader" }

// Score rescales VADER's pos/neu/neg proportions to sum to one and picks the largest.
// Text without any lexicon hit gets the neutral tie distribution.
func (s *VaderScorer) Score(raw, _ string) (domain.Label, float64, domain.Distribution) {
	scores := s.analyzer.PolarityScores(raw)

	total := scores.Positive + scores.Neutral + scores.Negative
	if total <= 0 {
		return domain.Neutral, 0.5, domain.Distribution{
			domain.Positive: 0.25,
			domain.Neutral:  0.5,
			domain.Negative: 0.25,
		}
	}

	dist := domain.Distribution{
		domain.Positive: scores.Positive / total,
		domain.Neutral:  scores.Neutral / total,
		domain.Negative: scores.Negative / total,
	}
	label, confidence := dist.Max()
	return label, confidence, dist
}
