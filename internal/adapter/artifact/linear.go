package artifact

import (
	"fmt"
	"math"

	"github.com/pscheid92/reviewsense/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	KindLogisticRegression = "logistic_regression"
	KindMultinomialNB      = "multinomial_nb"
)

type linearDocument struct {
	Kind      string      `json:"kind"`
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LinearClassifier scores each class as w·x + b and turns the scores into
// probabilities with a softmax. This covers multinomial logistic regression and
// multinomial naive Bayes (w = feature log-probabilities, b = class log-priors).
// A binary logistic regression with a single coefficient row is expanded to two rows,
// which makes the softmax equal to the logistic sigmoid.
type LinearClassifier struct {
	kind      string
	classes   []domain.Label
	weights   *mat.Dense
	intercept *mat.VecDense
}

func newLinearClassifier(doc linearDocument) (*LinearClassifier, error) {
	kind := doc.Kind
	if kind == "" {
		kind = KindLogisticRegression
	}
	if kind != KindLogisticRegression && kind != KindMultinomialNB {
		return nil, fmt.Errorf("unsupported classifier kind %q", doc.Kind)
	}
	if len(doc.Classes) < 2 {
		return nil, fmt.Errorf("classifier needs at least 2 classes, got %d", len(doc.Classes))
	}

	coef, intercept := doc.Coef, doc.Intercept
	if kind == KindLogisticRegression && len(doc.Classes) == 2 && len(coef) == 1 && len(intercept) == 1 {
		coef = [][]float64{make([]float64, len(coef[0])), coef[0]}
		intercept = []float64{0, intercept[0]}
	}

	if len(coef) != len(doc.Classes) {
		return nil, fmt.Errorf("coef has %d rows for %d classes", len(coef), len(doc.Classes))
	}
	if len(intercept) != len(doc.Classes) {
		return nil, fmt.Errorf("intercept has %d entries for %d classes", len(intercept), len(doc.Classes))
	}
	cols := len(coef[0])
	if cols == 0 {
		return nil, fmt.Errorf("coef rows are empty")
	}

	data := make([]float64, 0, len(coef)*cols)
	for i, row := range coef {
		if len(row) != cols {
			return nil, fmt.Errorf("coef row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	classes := make([]domain.Label, len(doc.Classes))
	for i, c := range doc.Classes {
		classes[i] = domain.Label(c)
	}

	return &LinearClassifier{
		kind:      kind,
		classes:   classes,
		weights:   mat.NewDense(len(coef), cols, data),
		intercept: mat.NewVecDense(len(intercept), append([]float64(nil), intercept...)),
	}, nil
}

func (c *LinearClassifier) Kind() string { return c.kind }

// Dim is the expected feature vector length.
func (c *LinearClassifier) Dim() int {
	_, cols := c.weights.Dims()
	return cols
}

func (c *LinearClassifier) Classes() []domain.Label {
	return append([]domain.Label(nil), c.classes...)
}

// Predict returns the class with the highest decision score.
func (c *LinearClassifier) Predict(x []float64) domain.Label {
	return c.classes[floats.MaxIdx(c.decision(x))]
}

// PredictProba returns class probabilities aligned with Classes.
func (c *LinearClassifier) PredictProba(x []float64) []float64 {
	scores := c.decision(x)
	lse := floats.LogSumExp(scores)
	for i, s := range scores {
		scores[i] = math.Exp(s - lse)
	}
	return scores
}

// decision pads or truncates x to Dim so a mismatched vector cannot panic in MulVec.
func (c *LinearClassifier) decision(x []float64) []float64 {
	rows, cols := c.weights.Dims()
	padded := make([]float64, cols)
	copy(padded, x)
	features := mat.NewVecDense(cols, padded)
	scores := mat.NewVecDense(rows, nil)
	scores.MulVec(c.weights, features)
	scores.AddVec(scores, c.intercept)
	return scores.RawVector().Data
}
