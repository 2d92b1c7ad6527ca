package kernel

import (
	"github.com/kc0gdh/radiocore/base"
	"github.com/kc0gdh/radiocore/simd"
)

// DotFloat32 returns sum(f[i]*g[i]) for two equal-length real spans,
// seeding up to four 8-lane accumulators and horizontally summing at
// the end.
func DotFloat32(f, g []float32) float32 {
	assertf(len(f) == len(g), "DotFloat32: span length mismatch")
	n := len(f)

	var acc0, acc1, acc2, acc3 float32
	i := 0
	for ; i+32 <= n; i += 32 {
		acc0 += simd.DotReal(simd.Load(f[i:i+8]), simd.Load(g[i:i+8]))
		acc1 += simd.DotReal(simd.Load(f[i+8:i+16]), simd.Load(g[i+8:i+16]))
		acc2 += simd.DotReal(simd.Load(f[i+16:i+24]), simd.Load(g[i+16:i+24]))
		acc3 += simd.DotReal(simd.Load(f[i+24:i+32]), simd.Load(g[i+24:i+32]))
	}
	for ; i+8 <= n; i += 8 {
		acc0 += simd.DotReal(simd.Load(f[i:i+8]), simd.Load(g[i:i+8]))
	}
	for ; i+4 <= n; i += 4 {
		acc1 += simd.DotReal(simd.Load(f[i:i+4]), simd.Load(g[i:i+4]))
	}
	sum := acc0 + acc1 + acc2 + acc3
	for ; i < n; i++ {
		sum += f[i] * g[i]
	}
	return sum
}

// DotHalf is the half-precision analogue of DotFloat32.
func DotHalf(f, g []base.Half) base.Half {
	assertf(len(f) == len(g), "DotHalf: span length mismatch")
	var sum float64
	for i := range f {
		sum += f[i].Float64() * g[i].Float64()
	}
	return base.NewHalfFromFloat64(sum)
}

// DotComplexFloat returns sum(f[i]*g[i]) for a complex span f and a
// real span g of equal length.
func DotComplexFloat(f []base.Complex[float32], g []float32) base.Complex[float32] {
	assertf(len(f) == len(g), "DotComplexFloat: span length mismatch")
	var sum base.Complex[float32]
	for i := range f {
		sum = sum.Add(f[i].MulScalar(g[i]))
	}
	return sum
}

// DotComplexHalf is the half-precision analogue of DotComplexFloat.
func DotComplexHalf(f []base.Complex[base.Half], g []base.Half) base.Complex[base.Half] {
	assertf(len(f) == len(g), "DotComplexHalf: span length mismatch")
	var sum base.Complex[base.Half]
	for i := range f {
		sum = sum.Add(f[i].MulScalar(g[i]))
	}
	return sum
}

// DotComplex returns sum(f[i]*g[i]) for two equal-length complex spans.
func DotComplex(f, g []base.Complex[float32]) base.Complex[float32] {
	assertf(len(f) == len(g), "DotComplex: span length mismatch")
	var sum base.Complex[float32]
	for i := range f {
		sum = sum.Add(f[i].Mul(g[i]))
	}
	return sum
}
