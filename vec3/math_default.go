//go:build !fastmath

package vec3

import "math"

// mathSqrt computes sqrt(x) using the standard library.
func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}
