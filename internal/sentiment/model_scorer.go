package sentiment

import "github.com/pscheid92/reviewsense/internal/domain"

// ModelScorer delegates to a trained vectorizer/classifier pair. It reads the
// normalized text only.
type ModelScorer struct {
	vectorizer domain.Vectorizer
	classifier domain.Classifier
}

func NewModelScorer(pair *domain.ArtifactPair) *ModelScorer {
	return &ModelScorer{vectorizer: pair.Vectorizer, classifier: pair.Classifier}
}

func (*ModelScorer) Name() string { return "model" }

// Score zips the classifier's classes with its probability vector. Classes outside
// Positive/Neutral/Negative are passed through as-is.
func (s *ModelScorer) Score(_, normalized string) (domain.Label, float64, domain.Distribution) {
	x := s.vectorizer.Transform(normalized)
	label := s.classifier.Predict(x)
	probs := s.classifier.PredictProba(x)

	classes := s.classifier.Classes()
	dist := make(domain.Distribution, len(classes))
	var confidence float64
	for i, class := range classes {
		if i >= len(probs) {
			break
		}
		dist[class] = probs[i]
		confidence = max(confidence, probs[i])
	}
	return label, confidence, dist
}
