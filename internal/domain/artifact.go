package domain

// Vectorizer turns normalized text into a feature vector.
type Vectorizer interface {
	Transform(text string) []float64
	Dim() int
}

// Classifier predicts sentiment from a feature vector. PredictProba is aligned with Classes.
type Classifier interface {
	Classes() []Label
	Predict(x []float64) Label
	PredictProba(x []float64) []float64
}

// ArtifactPair is a trained vectorizer and classifier that were loaded together.
// A nil *ArtifactPair means no model is available.
type ArtifactPair struct {
	Vectorizer Vectorizer
	Classifier Classifier
}
