package kernel

import (
	"github.com/kc0gdh/radiocore/base"
	"github.com/kc0gdh/radiocore/simd"
)

// DotFlipFloat32 returns sum(f[i]*g[N-1-i]) for two equal-length real
// spans: g is read backwards in register-sized strides, each loaded
// vector is reversed, and the dot-product recurrence applied.
func DotFlipFloat32(f, g []float32) float32 {
	assertf(len(f) == len(g), "DotFlipFloat32: span length mismatch")
	n := len(f)
	eight, four, _ := peelCounts(n)

	var sum float32
	i := 0
	for ; i < eight; i += 8 {
		gv := simd.Reverse(simd.Load(g[n-i-8 : n-i]))
		fv := simd.Load(f[i : i+8])
		sum += simd.DotReal(fv, gv)
	}
	for ; i < eight+four; i += 4 {
		gv := simd.Reverse(simd.Load(g[n-i-4 : n-i]))
		fv := simd.Load(f[i : i+4])
		sum += simd.DotReal(fv, gv)
	}
	for ; i < n; i++ {
		sum += f[i] * g[n-1-i]
	}
	return sum
}

// DotFlipComplex is the complex analogue of DotFlipFloat32.
func DotFlipComplex(f, g []base.Complex[float32]) base.Complex[float32] {
	assertf(len(f) == len(g), "DotFlipComplex: span length mismatch")
	n := len(f)
	var sum base.Complex[float32]
	for i := 0; i < n; i++ {
		sum = sum.Add(f[i].Mul(g[n-1-i]))
	}
	return sum
}
