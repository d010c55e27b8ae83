package stats

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-geom/field"
)

// AxisSpectrum holds the one-sided magnitude spectrum of one component
// plane.
type AxisSpectrum struct {
	Magnitude []float64 // bins 0 (DC) through Nyquist, linear scale
	// DominantBin is the strongest bin excluding DC; DominantFreq is its
	// center frequency in Hz. Both are zero for spectra with fewer than
	// two bins.
	DominantBin  int
	DominantFreq float64
	Peak         float64 // magnitude at DominantBin
}

// Spectra holds per-axis magnitude spectra of a trajectory.
type Spectra struct {
	X, Y, Z    AxisSpectrum
	FFTSize    int
	SampleRate float64
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// CalculateSpectra computes the one-sided magnitude spectrum of each
// component plane. Planes shorter than the FFT size are zero-padded to the
// next power of two. An empty field yields a zero result and a nil error;
// errors come only from FFT plan construction.
func CalculateSpectra(f *field.Field, sampleRate float64) (Spectra, error) {
	n := f.Len()
	if n == 0 {
		return Spectra{}, nil
	}
	if sampleRate <= 0 {
		sampleRate = float64(n)
	}

	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectra{}, fmt.Errorf("create fft plan: %w", err)
	}

	s := Spectra{FFTSize: fftSize, SampleRate: sampleRate}

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)

	for _, axis := range []struct {
		plane []float64
		dst   *AxisSpectrum
	}{
		{f.X, &s.X},
		{f.Y, &s.Y},
		{f.Z, &s.Z},
	} {
		for i := range in {
			if i < len(axis.plane) {
				in[i] = complex(axis.plane[i], 0)
			} else {
				in[i] = 0
			}
		}

		if err := plan.Forward(out, in); err != nil {
			return Spectra{}, fmt.Errorf("forward fft: %w", err)
		}

		*axis.dst = axisSpectrum(out[:fftSize/2+1], sampleRate, fftSize)
	}

	return s, nil
}

// axisSpectrum unpacks one-sided complex bins into a magnitude spectrum and
// locates the dominant non-DC bin.
func axisSpectrum(bins []complex128, sampleRate float64, fftSize int) AxisSpectrum {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, len(bins))
	vecmath.Magnitude(mag, re, im)

	a := AxisSpectrum{Magnitude: mag}
	for i := 1; i < len(mag); i++ {
		if mag[i] > a.Peak {
			a.Peak = mag[i]
			a.DominantBin = i
		}
	}
	if a.DominantBin > 0 {
		a.DominantFreq = float64(a.DominantBin) * sampleRate / float64(fftSize)
	}

	return a
}
