// Package testutil provides reusable test helper functions for plot geometry
// tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for geometry assertions.
const (
	DefaultTolerance = 1e-10
	PixelTolerance   = 1e-6
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertIncreasing verifies that the slice is strictly increasing.
func AssertIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not increasing",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertDecreasing verifies that the slice is strictly decreasing.
func AssertDecreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] >= s[i-1] {
			return assert.Fail(t, "not decreasing",
				"s[%d]=%f >= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertEvenlySpaced verifies that consecutive elements have a constant
// stride, within tolerance.
func AssertEvenlySpaced(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if len(s) < 3 {
		return true
	}
	stride := s[1] - s[0]
	for i := 2; i < len(s); i++ {
		if !assert.InDelta(t, stride, s[i]-s[i-1], tolerance,
			"stride changed at i=%d", i) {
			return false
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}
