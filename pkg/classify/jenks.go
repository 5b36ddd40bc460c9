// Package classify provides statistics helpers for deriving visual
// encodings from raw numeric data: Jenks natural-breaks classification
// and quantile computation.
//
// JenksBreaks is exposed as a standalone utility (and via the classify
// CLI command); no renderer consumes it for color assignment. The
// gridmap palette is keyed by the discrete level field instead.
package classify

import (
	"math"
	"sort"

	"github.com/ballotviz/ballotviz/pkg/errors"
)

// JenksBreaks computes natural-breaks class boundaries for values using
// Fisher-Jenks dynamic programming. It returns the ascending upper bound
// of each class; the last bound is the maximum value.
//
// The effective class count is clamped to the number of distinct values,
// so the result length is min(classCount, distinct(values)). An empty
// input yields an empty result. classCount must be positive.
//
// The optimization target is the unnormalized within-class sum of
// squared deviations (Σx² − (Σx)²/n, not divided by n). Each candidate
// split is scored with an O(1) incremental update of the running sum and
// sum of squares.
func JenksBreaks(values []float64, classCount int) ([]float64, error) {
	if classCount <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "class count must be positive, got %d", classCount)
	}
	if len(values) == 0 {
		return nil, nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	k := classCount
	if d := distinct(sorted); k > d {
		k = d
	}
	n := len(sorted)

	// lowerLimits[i][j] is the index (1-based) of the first value of the
	// j-th class in the optimal partition of the first i values.
	// cost[i][j] is the minimal accumulated sum-of-squares for that partition.
	lowerLimits := make([][]int, n+1)
	cost := make([][]float64, n+1)
	for i := range lowerLimits {
		lowerLimits[i] = make([]int, k+1)
		cost[i] = make([]float64, k+1)
	}
	for j := 1; j <= k; j++ {
		lowerLimits[1][j] = 1
		for i := 2; i <= n; i++ {
			cost[i][j] = math.Inf(1)
		}
	}

	for i := 2; i <= n; i++ {
		var sum, sumSq, w float64
		variance := 0.0
		for m := 1; m <= i; m++ {
			lower := i - m + 1
			val := sorted[lower-1]
			w++
			sum += val
			sumSq += val * val
			variance = sumSq - sum*sum/w
			if lower == 1 {
				continue
			}
			for j := 2; j <= k; j++ {
				if candidate := variance + cost[lower-1][j-1]; cost[i][j] >= candidate {
					lowerLimits[i][j] = lower
					cost[i][j] = candidate
				}
			}
		}
		lowerLimits[i][1] = 1
		cost[i][1] = variance
	}

	// Backtrack from the final cell to recover class upper bounds.
	breaks := make([]float64, k)
	breaks[k-1] = sorted[n-1]
	idx := n
	for j := k; j >= 2; j-- {
		lower := lowerLimits[idx][j]
		breaks[j-2] = sorted[lower-2]
		idx = lower - 1
	}
	return breaks, nil
}

// distinct counts distinct values in a sorted slice.
func distinct(sorted []float64) int {
	if len(sorted) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			count++
		}
	}
	return count
}
