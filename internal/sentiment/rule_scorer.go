package sentiment

import (
	"math"
	"strings"

	"github.com/pscheid92/reviewsense/internal/domain"
)

const (
	ruleBaseConfidence = 0.6
	ruleStepPerMarker  = 0.1
	ruleMaxConfidence  = 0.95
)

var (
	positiveWords = []string{
		"love", "great", "amazing", "excellent", "best", "good", "awesome",
		"fantastic", "wonderful", "perfect", "happy", "satisfied", "recommend",
		"beautiful", "stunning", "fast", "smooth", "quality", "worth",
	}
	negativeWords = []string{
		"hate", "bad", "terrible", "worst", "poor", "awful", "horrible",
		"disappointed", "waste", "broken", "slow", "expensive", "overpriced",
		"issue", "problem", "defect", "useless", "regret", "return",
	}
)

// RuleScorer scores raw text by counting marker words. It is the fallback when no
// trained model is available.
type RuleScorer struct{}

func NewRuleScorer() *RuleScorer { return &RuleScorer{} }

func (*RuleScorer) Name() string { return "rule" }

// Score counts every substring occurrence of each marker in the lowercased raw text.
// The normalized text is ignored.
func (*RuleScorer) Score(raw, _ string) (domain.Label, float64, domain.Distribution) {
	lower := strings.ToLower(raw)
	pos := countMarkers(lower, positiveWords)
	neg := countMarkers(lower, negativeWords)

	switch {
	case pos > neg:
		c := markerConfidence(pos)
		return domain.Positive, c, domain.Distribution{
			domain.Positive: c,
			domain.Neutral:  (1 - c) * 0.6,
			domain.Negative: (1 - c) * 0.4,
		}
	case neg > pos:
		c := markerConfidence(neg)
		return domain.Negative, c, domain.Distribution{
			domain.Positive: (1 - c) * 0.3,
			domain.Neutral:  (1 - c) * 0.7,
			domain.Negative: c,
		}
	default:
		return domain.Neutral, 0.5, domain.Distribution{
			domain.Positive: 0.25,
			domain.Neutral:  0.5,
			domain.Negative: 0.25,
		}
	}
}

func countMarkers(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		n += strings.Count(text, m)
	}
	return n
}

func markerConfidence(count int) float64 {
	return math.Min(ruleBaseConfidence+ruleStepPerMarker*float64(count), ruleMaxConfidence)
}
