// Package field provides batch quadratic scaling over sets of 3D vectors.
//
// A Field stores N vectors as three parallel component planes (structure of
// arrays), so the scaler runs as three block operations instead of N
// per-vector calls. Block kernels use SIMD implementations when available.
package field

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/cwbudde/algo-geom/vec3"
)

// parallelChunk is the number of vectors each goroutine scales per block in
// the parallel paths. Chunks stay large enough that the block kernels keep
// their SIMD advantage.
const parallelChunk = 4096

// Field holds N vectors as three component planes of equal length.
type Field struct {
	X, Y, Z []float64
}

// New creates a zero-filled field of n vectors.
func New(n int) *Field {
	buf := make([]float64, 3*n)
	return &Field{
		X: buf[:n:n],
		Y: buf[n : 2*n : 2*n],
		Z: buf[2*n:],
	}
}

// FromVectors creates a field holding a copy of the given vectors.
func FromVectors(vs []vec3.Vec3) *Field {
	f := New(len(vs))
	for i, v := range vs {
		f.X[i], f.Y[i], f.Z[i] = v.X, v.Y, v.Z
	}
	return f
}

// Len returns the number of vectors in the field.
func (f *Field) Len() int {
	return len(f.X)
}

// At returns the vector at index i.
func (f *Field) At(i int) vec3.Vec3 {
	return vec3.Vec3{X: f.X[i], Y: f.Y[i], Z: f.Z[i]}
}

// Set stores v at index i.
func (f *Field) Set(i int, v vec3.Vec3) {
	f.X[i], f.Y[i], f.Z[i] = v.X, v.Y, v.Z
}

// Append adds v to the end of the field.
func (f *Field) Append(v vec3.Vec3) {
	f.X = append(f.X, v.X)
	f.Y = append(f.Y, v.Y)
	f.Z = append(f.Z, v.Z)
}

// Vectors returns a copy of the field as a vector slice.
func (f *Field) Vectors() []vec3.Vec3 {
	out := make([]vec3.Vec3, f.Len())
	for i := range out {
		out[i] = f.At(i)
	}
	return out
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := New(f.Len())
	copy(c.X, f.X)
	copy(c.Y, f.Y)
	copy(c.Z, f.Z)
	return c
}

// balanceFactor returns the per-component multiplier for the selected
// direction: q² for expansion, 1/q² for contraction. A zero q contracts to
// an infinite factor, so scaled components become ±Inf (or NaN for zero
// components), matching per-vector division semantics.
func balanceFactor(q float64, expand bool) float64 {
	if expand {
		return q * q
	}
	return 1 / (q * q)
}

// ExpandInPlace multiplies every vector by q².
func (f *Field) ExpandInPlace(q float64) {
	f.BalanceInPlace(q, true)
}

// ContractInPlace divides every vector by q². If q == 0 the planes fill with
// IEEE-754 infinities or NaNs; no error is raised.
func (f *Field) ContractInPlace(q float64) {
	f.BalanceInPlace(q, false)
}

// BalanceInPlace applies quadratic scaling in the selected direction to
// every vector in the field.
func (f *Field) BalanceInPlace(q float64, expand bool) {
	s := balanceFactor(q, expand)
	vecmath.ScaleBlockInPlace(f.X, s)
	vecmath.ScaleBlockInPlace(f.Y, s)
	vecmath.ScaleBlockInPlace(f.Z, s)
}

// BalanceTo writes the scaled field into dst, leaving f untouched.
// dst must have the same length as f; the underlying block kernels panic on
// mismatched plane lengths.
func (f *Field) BalanceTo(dst *Field, q float64, expand bool) {
	s := balanceFactor(q, expand)
	vecmath.ScaleBlock(dst.X, f.X, s)
	vecmath.ScaleBlock(dst.Y, f.Y, s)
	vecmath.ScaleBlock(dst.Z, f.Z, s)
}

// BalanceInPlaceParallel is BalanceInPlace split across goroutines in chunks
// of contiguous vectors. Fields smaller than one chunk fall back to the
// serial path.
func (f *Field) BalanceInPlaceParallel(q float64, expand bool) {
	n := f.Len()
	if n <= parallelChunk {
		f.BalanceInPlace(q, expand)
		return
	}

	s := balanceFactor(q, expand)
	chunks := (n + parallelChunk - 1) / parallelChunk

	parallel.For(chunks, func(c, _ int) {
		lo := c * parallelChunk
		hi := min(lo+parallelChunk, n)
		vecmath.ScaleBlockInPlace(f.X[lo:hi], s)
		vecmath.ScaleBlockInPlace(f.Y[lo:hi], s)
		vecmath.ScaleBlockInPlace(f.Z[lo:hi], s)
	})
}
