// Package stats provides descriptive statistics and spectral analysis for
// sampled vector trajectories stored as a field.Field (one vector per
// sample).
package stats

import (
	"math"

	"github.com/cwbudde/algo-geom/field"
)

// Axis holds single-axis statistics over one component plane.
type Axis struct {
	Mean     float64
	RMS      float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Peak     float64 // max(|max|, |min|)
	Variance float64
}

// Stats holds per-axis statistics plus magnitude statistics over |v_i|.
type Stats struct {
	Length    int
	X, Y, Z   Axis
	Magnitude Axis
}

// axisStats computes Axis statistics over a plane in a single pass using
// Welford's online algorithm for the variance.
func axisStats(plane []float64) Axis {
	n := len(plane)
	if n == 0 {
		return Axis{}
	}

	var (
		mean   float64
		m2     float64
		energy float64
	)

	a := Axis{Min: plane[0], Max: plane[0]}

	for i, x := range plane {
		count := float64(i + 1)
		delta := x - mean
		mean += delta / count
		m2 += delta * (x - mean)

		energy += x * x

		if x > a.Max {
			a.Max = x
			a.MaxPos = i
		}
		if x < a.Min {
			a.Min = x
			a.MinPos = i
		}
	}

	a.Mean = mean
	a.Variance = m2 / float64(n)
	a.RMS = math.Sqrt(energy / float64(n))
	a.Peak = math.Max(math.Abs(a.Max), math.Abs(a.Min))

	return a
}

// Calculate computes per-axis and magnitude statistics over the field.
// An empty field yields a zero-valued result.
func Calculate(f *field.Field) Stats {
	n := f.Len()
	if n == 0 {
		return Stats{}
	}

	mag := make([]float64, n)
	for i := range mag {
		mag[i] = f.At(i).Length()
	}

	return Stats{
		Length:    n,
		X:         axisStats(f.X),
		Y:         axisStats(f.Y),
		Z:         axisStats(f.Z),
		Magnitude: axisStats(mag),
	}
}
