package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Correlate returns the Pearson correlation coefficient of left and right.
//
// Empty or unequal-length inputs report 0, as does a pair in which either
// side has (near-)zero variance. The result is clamped to [-1, 1] to absorb
// rounding at the extremes.
func Correlate(left, right []float64) float64 {
	if len(left) == 0 || len(right) == 0 || len(left) != len(right) {
		return 0
	}

	leftMean := stat.Mean(left, nil)
	rightMean := stat.Mean(right, nil)

	var numerator, leftSq, rightSq float64
	for i := range left {
		dl := left[i] - leftMean
		dr := right[i] - rightMean
		numerator += dl * dr
		leftSq += dl * dl
		rightSq += dr * dr
	}

	if leftSq <= epsilon || rightSq <= epsilon {
		return 0
	}

	return clamp(numerator/(math.Sqrt(leftSq)*math.Sqrt(rightSq)), -1, 1)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
