package field

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-geom/scale"
	"github.com/cwbudde/algo-geom/vec3"
)

const tolerance = 1e-12

func testVectors(n int) []vec3.Vec3 {
	out := make([]vec3.Vec3, n)
	for i := range out {
		fi := float64(i)
		out[i] = vec3.New(fi, -2*fi, 0.5*fi-3)
	}
	return out
}

func TestNewAndAccessors(t *testing.T) {
	f := New(4)
	if f.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", f.Len())
	}

	v := vec3.New(1, 2, 3)
	f.Set(2, v)
	if got := f.At(2); !got.AlmostEqual(v, tolerance) {
		t.Errorf("At(2): got %v, want %v", got, v)
	}
	if got := f.At(0); !got.AlmostEqual(vec3.Vec3{}, tolerance) {
		t.Errorf("At(0): got %v, want zero", got)
	}
}

func TestFromVectorsRoundTrip(t *testing.T) {
	vs := testVectors(17)
	f := FromVectors(vs)

	got := f.Vectors()
	if len(got) != len(vs) {
		t.Fatalf("Vectors len: got %d, want %d", len(got), len(vs))
	}
	for i := range vs {
		if !got[i].AlmostEqual(vs[i], tolerance) {
			t.Errorf("index %d: got %v, want %v", i, got[i], vs[i])
		}
	}
}

func TestAppend(t *testing.T) {
	f := New(0)
	f.Append(vec3.New(1, 2, 3))
	f.Append(vec3.New(4, 5, 6))

	if f.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", f.Len())
	}
	if got := f.At(1); !got.AlmostEqual(vec3.New(4, 5, 6), tolerance) {
		t.Errorf("At(1): got %v, want (4, 5, 6)", got)
	}
}

func TestBalanceInPlaceMatchesScalar(t *testing.T) {
	vs := testVectors(33)

	for _, expand := range []bool{true, false} {
		f := FromVectors(vs)
		f.BalanceInPlace(2.5, expand)

		for i, v := range vs {
			want := scale.Balance(v, 2.5, expand)
			if got := f.At(i); !got.AlmostEqual(want, 1e-9) {
				t.Errorf("expand=%v index %d: got %v, want %v", expand, i, got, want)
			}
		}
	}
}

func TestExpandContractInPlaceRoundTrip(t *testing.T) {
	vs := testVectors(64)
	f := FromVectors(vs)

	f.ExpandInPlace(3)
	f.ContractInPlace(3)

	for i, v := range vs {
		if got := f.At(i); !got.AlmostEqual(v, 1e-9) {
			t.Errorf("index %d: got %v, want %v", i, got, v)
		}
	}
}

func TestContractInPlaceZeroFactor(t *testing.T) {
	f := FromVectors([]vec3.Vec3{vec3.New(1, -1, 0)})
	f.ContractInPlace(0)

	got := f.At(0)
	if !math.IsInf(got.X, 1) {
		t.Errorf("X: got %g, want +Inf", got.X)
	}
	if !math.IsInf(got.Y, -1) {
		t.Errorf("Y: got %g, want -Inf", got.Y)
	}
	if !math.IsNaN(got.Z) {
		t.Errorf("Z: got %g, want NaN", got.Z)
	}
}

func TestBalanceTo(t *testing.T) {
	vs := testVectors(20)
	src := FromVectors(vs)
	dst := New(len(vs))

	src.BalanceTo(dst, 2, true)

	// Source is untouched.
	for i, v := range vs {
		if got := src.At(i); !got.AlmostEqual(v, tolerance) {
			t.Errorf("src index %d changed: got %v, want %v", i, got, v)
		}
		want := scale.Expand(v, 2)
		if got := dst.At(i); !got.AlmostEqual(want, 1e-9) {
			t.Errorf("dst index %d: got %v, want %v", i, got, want)
		}
	}
}

func TestBalanceInPlaceParallel(t *testing.T) {
	// Larger than one chunk so the parallel path actually splits.
	vs := testVectors(3*4096 + 17)

	serial := FromVectors(vs)
	serial.BalanceInPlace(1.5, false)

	par := FromVectors(vs)
	par.BalanceInPlaceParallel(1.5, false)

	for i := range vs {
		if !par.At(i).AlmostEqual(serial.At(i), tolerance) {
			t.Fatalf("index %d: parallel %v != serial %v", i, par.At(i), serial.At(i))
		}
	}
}

func TestClone(t *testing.T) {
	f := FromVectors(testVectors(8))
	c := f.Clone()

	c.ExpandInPlace(2)

	// Original unaffected.
	if got, want := f.At(1), vec3.New(1, -2, -2.5); !got.AlmostEqual(want, tolerance) {
		t.Errorf("original mutated: got %v, want %v", got, want)
	}
}
