package classify

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile of values (p in [0, 1]) using linear
// interpolation between closest ranks. Returns NaN for empty input or
// p outside [0, 1].
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Median returns the median of values, or NaN for empty input.
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}
