package kernel

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kc0gdh/radiocore/base"
)

func pureTone(n int, k0 int) []base.Complex[float32] {
	samples := make([]base.Complex[float32], n)
	for i := 0; i < n; i++ {
		angle := 2 * stdmath.Pi * float64(k0) * float64(i) / float64(n)
		samples[i] = base.NewComplex(float32(stdmath.Cos(angle)), float32(stdmath.Sin(angle)))
	}
	return samples
}

func TestCalculateMultipleDFTBinsGoertzelPureTone(t *testing.T) {
	const n = 16
	const k0 = 3
	samples := pureTone(n, k0)

	bins := make([]float64, n/2)
	for i := range bins {
		bins[i] = float64(i)
	}
	out := make([]base.Complex[float32], len(bins))
	got := CalculateMultipleDFTBinsGoertzel(samples, bins, out)

	for i, c := range got {
		mag := float64(c.Abs())
		if i == k0 {
			assert.InDelta(t, 1.0, mag, 1e-5, "tone bin")
		} else {
			assert.LessOrEqual(t, mag, 1e-5, "bin %d should be near-zero", i)
		}
	}
}

func TestCalculateDFTBinGoertzelMatchesNaive(t *testing.T) {
	const n = 20
	samples := make([]base.Complex[float32], n)
	for i := range samples {
		samples[i] = base.NewComplex(float32(i%5)-2, float32((i*3)%7)-3)
	}

	for k := 0.0; k < 10; k++ {
		goertzel := CalculateDFTBinGoertzel(samples, k)
		naive := CalculateDFTNaive(samples, k)
		assert.InDelta(t, float64(naive.Real), float64(goertzel.Real), 1e-4, "bin %v real", k)
		assert.InDelta(t, float64(naive.Imag), float64(goertzel.Imag), 1e-4, "bin %v imag", k)
	}
}

func TestCalculateDFTBinGoertzelFractionalBin(t *testing.T) {
	const n = 16
	samples := pureTone(n, 4)
	goertzel := CalculateDFTBinGoertzel(samples, 4.5)
	naive := CalculateDFTNaive(samples, 4.5)
	assert.InDelta(t, float64(naive.Real), float64(goertzel.Real), 1e-4)
	assert.InDelta(t, float64(naive.Imag), float64(goertzel.Imag), 1e-4)
}
