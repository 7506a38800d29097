package plotkit

import "math"

// Transform preprocesses data-space x/y values before they are bound to a
// plot. It is applied once, when a frame is added, so limits and geometry
// stay consistent. Transforms must be monotonic.
type Transform func(v float64) float64

// Identity passes values through unchanged.
func Identity(v float64) float64 { return v }

// Log10 plots values on a decimal log scale.
func Log10(v float64) float64 { return math.Log10(v) }
