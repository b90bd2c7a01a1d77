// Package series holds the numeric leaves of the signal core: min-max
// rescaling of a metric series and Pearson correlation between two series.
//
// Neither function fails. Degenerate inputs (empty, constant, mismatched
// lengths) map to defined fallback values instead of errors, so callers at
// the host boundary only ever deal with decode and encode failures.
package series

// epsilon is the float64 machine epsilon (the gap between 1 and the next
// representable value).
const epsilon = 0x1p-52
