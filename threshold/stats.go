package threshold

import (
	"math"

	"golang.org/x/exp/constraints"
)

// confidenceZ95 is the two-sided 95% quantile of the standard normal.
const confidenceZ95 = 1.96

// Number is any integer or floating-point sample type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Mean returns the arithmetic mean of xs, or NaN for an empty sample.
func Mean[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}

	return sum / float64(len(xs))
}

// StdDev returns the sample standard deviation of xs with Bessel's
// correction (divisor len-1). Samples with fewer than two values have no
// spread to estimate and yield 0.
//
// Two passes: mean first, then squared deviations, to avoid the
// cancellation of the Σx² − (Σx)²/n form.
func StdDev[T Number](xs []T) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := float64(x) - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)-1))
}

// ConfidenceInterval returns mean ∓ 1.96·stddev/√n.
func ConfidenceInterval(mean, stddev float64, n int) (low, high float64) {
	half := confidenceZ95 * stddev / math.Sqrt(float64(n))
	return mean - half, mean + half
}
