package kernel

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kc0gdh/radiocore/base"
)

// TestRotatorUnwindsUnitCircle rotates 40 unit samples by the exact
// inverse of their own phase increment, so every output lands back on
// (1, 0).
func TestRotatorUnwindsUnitCircle(t *testing.T) {
	const n = 40
	phaseInc := base.NewComplex(float32(stdmath.Cos(0.1)), float32(stdmath.Sin(0.1)))

	samples := make([]base.Complex[float32], n)
	p := base.NewComplexReal[float32](1)
	for i := range samples {
		samples[i] = p
		p = p.Mul(phaseInc)
	}

	inv := base.NewComplexReal[float32](1).Div(phaseInc)
	phase := base.NewComplexReal[float32](1)
	out := make([]base.Complex[float32], n)
	got := Rotator(samples, &phase, inv, out)

	assert.Len(t, got, n)
	for i, c := range got {
		assert.InDelta(t, 1.0, float64(c.Real), 1e-5, "sample %d real", i)
		assert.InDelta(t, 0.0, float64(c.Imag), 1e-5, "sample %d imag", i)
	}
}

func TestRotatorPhaseRenormalized(t *testing.T) {
	samples := make([]base.Complex[float32], 12)
	for i := range samples {
		samples[i] = base.NewComplexReal[float32](1)
	}
	phaseInc := base.NewComplex(float32(stdmath.Cos(0.05)), float32(stdmath.Sin(0.05)))
	phase := base.NewComplexReal[float32](1)
	out := make([]base.Complex[float32], len(samples))
	Rotator(samples, &phase, phaseInc, out)

	mag := phase.Abs()
	assert.InDelta(t, 1.0, float64(mag), 1e-5)
}
