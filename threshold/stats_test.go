package threshold_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/percolation/threshold"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, threshold.Mean([]int{1, 2, 3, 4}), eps)
	assert.InDelta(t, 0.2, threshold.Mean([]float64{0.1, 0.2, 0.3}), eps)
	assert.True(t, math.IsNaN(threshold.Mean([]float64{})))
}

func TestStdDev(t *testing.T) {
	// Σ(x-5)² = 32 over 8 values, sample variance 32/7.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, math.Sqrt(32.0/7.0), threshold.StdDev(xs), eps)

	assert.Zero(t, threshold.StdDev([]uint8{7}))
	assert.Zero(t, threshold.StdDev([]float32{}))
	assert.Zero(t, threshold.StdDev([]int{3, 3, 3}))
}

func TestConfidenceInterval(t *testing.T) {
	low, high := threshold.ConfidenceInterval(10, 2, 16)
	assert.InDelta(t, 10-0.98, low, eps)
	assert.InDelta(t, 10+0.98, high, eps)
}
