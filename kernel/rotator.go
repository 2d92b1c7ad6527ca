package kernel

import (
	"github.com/kc0gdh/radiocore/base"
	"github.com/kc0gdh/radiocore/simd"
)

// Rotator rotates each input complex sample by an ever-increasing
// phase. On entry, *phase is the rotation for sample 0; phaseInc is the
// per-sample phase increment. On exit, *phase equals the rotation that
// would apply to the next unseen sample, renormalized to unit
// magnitude. Returns the written subspan of output.
//
// The 8-lane body precomputes eight staggered phase vectors
// {p, p*delta, p*delta^2, ..., p*delta^7}, the 8-sample phase increment
// delta^8, then advances the staggered vector by delta^8 each
// iteration; the lowest lane holds the running phase on exit from a
// vectorized body, and the scalar tail completes it.
func Rotator(
	samples []base.Complex[float32],
	phase *base.Complex[float32],
	phaseInc base.Complex[float32],
	output []base.Complex[float32],
) []base.Complex[float32] {
	assertf(len(output) >= len(samples), "Rotator: output span shorter than input")
	n := len(samples)
	eight, four, _ := peelCounts(n)

	cur := *phase
	var i int

	if eight > 0 {
		staggered := stagger(cur, phaseInc, 8)
		delta := intPowOne(phaseInc, 8)
		for ; i < eight; i += 8 {
			rotateGroup(samples[i:i+8], staggered, output[i:i+8])
			advance(staggered, delta)
		}
		cur = staggered[0]
	}

	if four > 0 {
		staggered := stagger(cur, phaseInc, 4)
		delta := intPowOne(phaseInc, 4)
		for ; i < eight+four; i += 4 {
			rotateGroup(samples[i:i+4], staggered, output[i:i+4])
			advance(staggered, delta)
		}
		cur = staggered[0]
	}

	for ; i < n; i++ {
		output[i] = samples[i].Mul(cur)
		cur = cur.Mul(phaseInc)
	}

	mag := cur.Abs()
	*phase = cur.DivScalar(mag)
	return output[:n]
}

func stagger(start, inc base.Complex[float32], width int) []base.Complex[float32] {
	out := make([]base.Complex[float32], width)
	p := start
	for j := 0; j < width; j++ {
		out[j] = p
		p = p.Mul(inc)
	}
	return out
}

func advance(staggered []base.Complex[float32], delta base.Complex[float32]) {
	for j := range staggered {
		staggered[j] = staggered[j].Mul(delta)
	}
}

func rotateGroup(samples, phases []base.Complex[float32], output []base.Complex[float32]) {
	width := len(samples)
	sReal := make([]float32, width)
	sImag := make([]float32, width)
	pReal := make([]float32, width)
	pImag := make([]float32, width)
	for j := 0; j < width; j++ {
		sReal[j] = samples[j].Real
		sImag[j] = samples[j].Imag
		pReal[j] = phases[j].Real
		pImag[j] = phases[j].Imag
	}
	sv := simd.NewComplexRegister(simd.Load(sReal), simd.Load(sImag))
	pv := simd.NewComplexRegister(simd.Load(pReal), simd.Load(pImag))
	res := simd.ComplexMul(sv, pv)
	for j := 0; j < width; j++ {
		output[j] = res.At(j)
	}
}
