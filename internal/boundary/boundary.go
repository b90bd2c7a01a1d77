// Package boundary adapts host-provided dynamic values to the pure signal
// functions in packages series and status.
//
// Every dynamic-typing concern lives here: hosts pass *structpb.Value
// arguments, receive typed results, and see only two failure kinds,
// *DecodeError for malformed input and *EncodeError for results that cannot
// be represented back. The numeric core never fails.
package boundary

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/miradorstack/signal-core/internal/series"
	"github.com/miradorstack/signal-core/internal/status"
)

// Sides of a two-series call, as reported by DecodeError.Side.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// NormalizeMetricSeries min-max normalizes a dynamic list of numbers.
func NormalizeMetricSeries(values *structpb.Value) (*structpb.Value, error) {
	input, err := DecodeSeries(values)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return EncodeSeries(series.Normalize(input))
}

// CorrelateMetricSeries returns the Pearson correlation of two dynamic lists.
// The left argument is decoded first.
func CorrelateMetricSeries(left, right *structpb.Value) (float64, error) {
	leftValues, err := DecodeSeries(left)
	if err != nil {
		return 0, &DecodeError{Side: SideLeft, Err: err}
	}
	rightValues, err := DecodeSeries(right)
	if err != nil {
		return 0, &DecodeError{Side: SideRight, Err: err}
	}
	return series.Correlate(leftValues, rightValues), nil
}

// ShapeResourceStatus labels a resource status with the built-in rules.
func ShapeResourceStatus(kind, text string) string {
	return string(status.Classify(kind, text))
}
