package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributionMax(t *testing.T) {
	d := Distribution{Positive: 0.2, Neutral: 0.5, Negative: 0.3}
	label, v := d.Max()
	assert.Equal(t, Neutral, label)
	assert.InDelta(t, 0.5, v, 1e-12)
}

func TestDistributionMax_TieUsesLabelOrder(t *testing.T) {
	d := Distribution{Positive: 0.4, Neutral: 0.2, Negative: 0.4}
	label, _ := d.Max()
	assert.Equal(t, Positive, label)
}

func TestDistributionMax_NonStandardLabels(t *testing.T) {
	d := Distribution{"mixed": 0.7, Positive: 0.3}
	label, v := d.Max()
	assert.Equal(t, Label("mixed"), label)
	assert.InDelta(t, 0.7, v, 1e-12)
}

func TestDistributionMax_Empty(t *testing.T) {
	label, v := Distribution{}.Max()
	assert.Empty(t, label)
	assert.Zero(t, v)
}
