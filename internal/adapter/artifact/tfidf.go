package artifact

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

type tfidfDocument struct {
	Kind        string         `json:"kind"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm"`
}

// TFIDFVectorizer maps whitespace-separated tokens to tf-idf weights with the
// scikit-learn conventions: optional 1+log(tf), idf weighting, optional L2 norm.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	sublinear  bool
	l2         bool
}

func newTFIDFVectorizer(doc tfidfDocument) (*TFIDFVectorizer, error) {
	if doc.Kind != "" && doc.Kind != "tfidf" {
		return nil, fmt.Errorf("unsupported vectorizer kind %q", doc.Kind)
	}
	if len(doc.IDF) == 0 {
		return nil, fmt.Errorf("vectorizer has empty idf vector")
	}
	if len(doc.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer has empty vocabulary")
	}
	for term, idx := range doc.Vocabulary {
		if idx < 0 || idx >= len(doc.IDF) {
			return nil, fmt.Errorf("vocabulary term %q has index %d outside [0,%d)", term, idx, len(doc.IDF))
		}
	}
	switch doc.Norm {
	case "", "l2":
	default:
		return nil, fmt.Errorf("unsupported norm %q", doc.Norm)
	}

	return &TFIDFVectorizer{
		vocabulary: doc.Vocabulary,
		idf:        doc.IDF,
		sublinear:  doc.SublinearTF,
		l2:         doc.Norm == "l2",
	}, nil
}

func (v *TFIDFVectorizer) Dim() int { return len(v.idf) }

// Transform returns a fresh feature vector; out-of-vocabulary tokens are ignored.
func (v *TFIDFVectorizer) Transform(text string) []float64 {
	x := make([]float64, len(v.idf))
	for _, tok := range strings.Fields(text) {
		if i, ok := v.vocabulary[tok]; ok {
			x[i]++
		}
	}

	for i, tf := range x {
		if tf == 0 {
			continue
		}
		if v.sublinear {
			tf = 1 + math.Log(tf)
		}
		x[i] = tf * v.idf[i]
	}

	if v.l2 {
		if norm := floats.Norm(x, 2); norm > 0 {
			floats.Scale(1/norm, x)
		}
	}
	return x
}
