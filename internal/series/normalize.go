package series

import "math"

// Normalize rescales values onto [0, 1] using the series minimum and maximum.
//
// An empty series yields an empty slice and a series whose range is below
// machine epsilon yields all zeros. NaN elements are skipped when locating
// the extremes and pass through the transform as NaN.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return []float64{}
	}

	lo, hi := bounds(values)
	span := hi - lo
	if math.Abs(span) < epsilon {
		return make([]float64, len(values))
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out
}

// bounds folds values from +Inf/-Inf seeds. The comparisons are strict so
// NaN never replaces a running extreme.
func bounds(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
