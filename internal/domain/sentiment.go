package domain

import "slices"

// Label is a sentiment class.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Labels returns the three sentiment classes in display order.
func Labels() []Label {
	return []Label{Positive, Neutral, Negative}
}

// Distribution maps each label to its probability.
type Distribution map[Label]float64

// Max returns the label with the highest probability. Ties resolve in Labels() order;
// labels outside the standard set are considered afterwards in name order.
func (d Distribution) Max() (Label, float64) {
	order := Labels()
	var extra []Label
	for l := range d {
		if !isStandard(l) {
			extra = append(extra, l)
		}
	}
	slices.Sort(extra)
	order = append(order, extra...)

	var (
		best      Label
		bestValue float64
		found     bool
	)
	for _, l := range order {
		v, ok := d[l]
		if !ok {
			continue
		}
		if !found || v > bestValue {
			best, bestValue, found = l, v, true
		}
	}
	return best, bestValue
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

func isStandard(l Label) bool {
	return l == Positive || l == Neutral || l == Negative
}

// Result is the outcome of analyzing one review text.
type Result struct {
	Label          Label
	Confidence     float64
	NormalizedText string
	Distribution   Distribution
	Scorer         string
}

// Comparison holds two independently analyzed texts.
type Comparison struct {
	First  Result
	Second Result
}
