package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kc0gdh/radiocore/base"
)

func TestDotFloat32(t *testing.T) {
	f := make([]float32, 19)
	g := make([]float32, 19)
	var want float32
	for i := range f {
		f[i] = float32(i + 1)
		g[i] = float32(2*i + 1)
		want += f[i] * g[i]
	}
	got := DotFloat32(f, g)
	assert.InDelta(t, want, got, 1e-2)
}

func TestDotFloat32AcrossAllPeelStages(t *testing.T) {
	// 32 (one pass of the four 8-lane accumulators) + 5 (one 4-lane group + 1 scalar).
	n := 37
	f := make([]float32, n)
	g := make([]float32, n)
	var want float32
	for i := range f {
		f[i] = 1
		g[i] = 1
		want++
	}
	assert.InDelta(t, want, DotFloat32(f, g), 1e-3)
}

func TestDotHalf(t *testing.T) {
	f := []base.Half{base.NewHalf(1), base.NewHalf(2), base.NewHalf(3)}
	g := []base.Half{base.NewHalf(4), base.NewHalf(5), base.NewHalf(6)}
	got := DotHalf(f, g)
	assert.InDelta(t, 32, got.Float64(), 1e-1)
}

func TestDotComplexFloat(t *testing.T) {
	f := []base.Complex[float32]{base.NewComplex[float32](1, 2), base.NewComplex[float32](3, -1)}
	g := []float32{2, 4}
	got := DotComplexFloat(f, g)
	want := base.NewComplex[float32](14, 0)
	assert.InDelta(t, want.Real, got.Real, 1e-6)
	assert.InDelta(t, want.Imag, got.Imag, 1e-6)
}

func TestDotComplex(t *testing.T) {
	f := []base.Complex[float32]{base.NewComplex[float32](1, 2), base.NewComplex[float32](3, -1)}
	g := []base.Complex[float32]{base.NewComplex[float32](1, 0), base.NewComplex[float32](0, 1)}
	got := DotComplex(f, g)
	// (1,2)*(1,0) = (1,2); (3,-1)*(0,1) = (1,3); sum = (2,5).
	assert.InDelta(t, float32(2), got.Real, 1e-6)
	assert.InDelta(t, float32(5), got.Imag, 1e-6)
}
