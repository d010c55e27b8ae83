//go:build fastmath

package vec3

import (
	"github.com/meko-christian/algo-approx"
)

// mathSqrt computes sqrt(x) using fast approximation.
// Accuracy is sufficient for magnitude and normalization work; callers
// needing exact IEEE-754 square roots should build without the fastmath tag.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
