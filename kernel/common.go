// Package kernel implements the streaming numeric kernels that operate
// on spans (Go slices) of real and complex samples: magnitude, dot
// products, the rotator, power spectral density, horizontal reductions,
// the peak detector and the Goertzel partial DFT. Abs, FastAbs, Norm,
// DotFlipFloat32, FastIntPow, Rotator and PowerSpectralDensity follow a
// three-stage peel: an 8-lane body, a 4-lane body, then a scalar tail.
// DotFloat32 and the horizontal reductions add a four-accumulator
// 32-sample body; the remaining kernels are single scalar loops.
package kernel

// peelCounts splits n elements into an 8-wide count, a 4-wide count and
// a scalar tail count, matching the "N & ~7, then N & ~3 of the
// remainder, then <=3 scalar" staging every kernel here follows.
func peelCounts(n int) (eight, four, tail int) {
	eight = n &^ 7
	rest := n - eight
	four = rest &^ 3
	tail = rest - four
	return eight, four, tail
}

func assertf(cond bool, msg string) {
	if !cond {
		panic("kernel: " + msg)
	}
}
