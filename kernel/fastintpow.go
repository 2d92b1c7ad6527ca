package kernel

import "github.com/kc0gdh/radiocore/base"

// FastIntPow raises each element of bases to the integer power exp,
// writing into out. For exp > 0 the result is repeated multiplication
// (up to FMA reassociation). The original leaves exp <= 0 as an
// implementation detail; this port defines exp == 0 as 1 and exp < 0
// as repeated multiplication by the reciprocal, deterministic for equal
// input.
func FastIntPow(bases []base.Complex[float32], exp int, out []base.Complex[float32]) []base.Complex[float32] {
	assertf(len(out) >= len(bases), "FastIntPow: output span shorter than input")
	n := len(bases)
	eight, four, _ := peelCounts(n)

	var i int
	for ; i < eight; i += 8 {
		for j := 0; j < 8; j++ {
			out[i+j] = intPowOne(bases[i+j], exp)
		}
	}
	for ; i < eight+four; i += 4 {
		for j := 0; j < 4; j++ {
			out[i+j] = intPowOne(bases[i+j], exp)
		}
	}
	for ; i < n; i++ {
		out[i] = intPowOne(bases[i], exp)
	}
	return out[:n]
}

func intPowOne(b base.Complex[float32], exp int) base.Complex[float32] {
	if exp == 0 {
		return base.NewComplexReal[float32](1)
	}
	e := exp
	recip := false
	if e < 0 {
		recip = true
		e = -e
	}
	result := base.NewComplexReal[float32](1)
	if recip {
		one := base.NewComplexReal[float32](1)
		inv := one.Div(b)
		for k := 0; k < e; k++ {
			result = result.Mul(inv)
		}
		return result
	}
	for k := 0; k < e; k++ {
		result = result.Mul(b)
	}
	return result
}
