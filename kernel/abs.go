package kernel

import (
	stdmath "math"

	"github.com/kc0gdh/radiocore/base"
	"github.com/kc0gdh/radiocore/simd"
)

// Abs writes the per-sample magnitude of complex samples into out,
// which must be at least as long as samples. Returns the written
// subspan of out.
func Abs(samples []base.Complex[float32], out []float32) []float32 {
	return absInto(samples, out, simd.ComplexAbs[float32])
}

// FastAbs writes a faster (possibly less precise) per-sample magnitude
// into out.
func FastAbs(samples []base.Complex[float32], out []float32) []float32 {
	return absInto(samples, out, simd.ComplexFastAbs[float32])
}

func absInto(
	samples []base.Complex[float32],
	out []float32,
	vectorized func(simd.ComplexRegister[float32]) simd.Register[float32],
) []float32 {
	assertf(len(out) >= len(samples), "Abs: output span shorter than input")
	n := len(samples)
	eight, four, _ := peelCounts(n)

	var i int
	for ; i < eight; i += 8 {
		reals := make([]float32, 8)
		imags := make([]float32, 8)
		for j := 0; j < 8; j++ {
			reals[j] = samples[i+j].Real
			imags[j] = samples[i+j].Imag
		}
		reg := simd.NewComplexRegister(simd.Load(reals), simd.Load(imags))
		vectorized(reg).Store(out[i : i+8])
	}
	for ; i < eight+four; i += 4 {
		reals := make([]float32, 4)
		imags := make([]float32, 4)
		for j := 0; j < 4; j++ {
			reals[j] = samples[i+j].Real
			imags[j] = samples[i+j].Imag
		}
		reg := simd.NewComplexRegister(simd.Load(reals), simd.Load(imags))
		vectorized(reg).Store(out[i : i+4])
	}
	for ; i < n; i++ {
		out[i] = samples[i].Abs()
	}
	return out[:n]
}

// Norm writes the per-sample squared magnitude of complex samples into
// out.
func Norm(samples []base.Complex[float32], out []float32) []float32 {
	assertf(len(out) >= len(samples), "Norm: output span shorter than input")
	n := len(samples)
	eight, four, _ := peelCounts(n)

	var i int
	for ; i < eight; i += 8 {
		for j := 0; j < 8; j++ {
			out[i+j] = samples[i+j].Norm()
		}
	}
	for ; i < eight+four; i += 4 {
		for j := 0; j < 4; j++ {
			out[i+j] = samples[i+j].Norm()
		}
	}
	for ; i < n; i++ {
		out[i] = samples[i].Norm()
	}
	return out[:n]
}

// AbsReal writes |x| for each real-valued sample into out.
func AbsReal(samples []float32, out []float32) []float32 {
	assertf(len(out) >= len(samples), "AbsReal: output span shorter than input")
	for i, x := range samples {
		out[i] = float32(stdmath.Abs(float64(x)))
	}
	return out[:len(samples)]
}
