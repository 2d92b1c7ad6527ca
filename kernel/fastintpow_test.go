package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kc0gdh/radiocore/base"
)

func TestFastIntPowPositive(t *testing.T) {
	bases := []base.Complex[float32]{
		base.NewComplex[float32](2, 0),
		base.NewComplex[float32](0, 1),
		base.NewComplex[float32](1, 1),
	}
	out := make([]base.Complex[float32], len(bases))
	got := FastIntPow(bases, 3, out)

	assert.InDelta(t, float32(8), got[0].Real, 1e-5)
	assert.InDelta(t, float32(0), got[0].Imag, 1e-5)

	// i^3 == -i
	assert.InDelta(t, float32(0), got[1].Real, 1e-5)
	assert.InDelta(t, float32(-1), got[1].Imag, 1e-5)
}

func TestFastIntPowZeroExponent(t *testing.T) {
	bases := []base.Complex[float32]{base.NewComplex[float32](5, 5), base.NewComplex[float32](0, 0)}
	out := make([]base.Complex[float32], len(bases))
	got := FastIntPow(bases, 0, out)
	for _, c := range got {
		assert.InDelta(t, float32(1), c.Real, 1e-6)
		assert.InDelta(t, float32(0), c.Imag, 1e-6)
	}
}

func TestFastIntPowNegativeExponent(t *testing.T) {
	bases := []base.Complex[float32]{base.NewComplex[float32](2, 0)}
	out := make([]base.Complex[float32], 1)
	got := FastIntPow(bases, -2, out)
	// (1/2)^2 == 0.25
	assert.InDelta(t, float32(0.25), got[0].Real, 1e-6)
	assert.InDelta(t, float32(0), got[0].Imag, 1e-6)
}

func TestFastIntPowAcrossPeelStages(t *testing.T) {
	n := 19
	bases := make([]base.Complex[float32], n)
	for i := range bases {
		bases[i] = base.NewComplex[float32](1, 0)
	}
	out := make([]base.Complex[float32], n)
	got := FastIntPow(bases, 5, out)
	for i := range got {
		assert.InDelta(t, float32(1), got[i].Real, 1e-6, "index %d", i)
	}
}
