package kernel

import (
	stdmath "math"

	"github.com/kc0gdh/radiocore/base"
)

// CalculateDFTBinGoertzel computes DFT[k]/N for a single, possibly
// fractional, bin k using the Goertzel recursive IIR filter:
//
//  1. w = 2*pi*k/N, c = cos(w), s = sin(w), coeff = 2*c.
//  2. s[-1] = s[-2] = 0.
//  3. For n in [0,N): s[n] = x[n] + coeff*s[n-1] - s[n-2].
//  4. I = s[N-1]*c - s[N-2], Q = s[N-1]*s.
//  5. For fractional k, twist with w2 = 2*pi*k (not k/N): c2 = cos(w2),
//     s2 = sin(w2); I' = I*c2 + Q*s2, Q' = -I*s2 + Q*c2.
//  6. result = (I'.real - Q'.imag, I'.imag + Q'.real) / N.
func CalculateDFTBinGoertzel(samples []base.Complex[float32], k float64) base.Complex[float32] {
	assertf(len(samples) > 0, "CalculateDFTBinGoertzel: input span must be non-empty")
	n := len(samples)

	w := 2 * stdmath.Pi * k / float64(n)
	c := stdmath.Cos(w)
	s := stdmath.Sin(w)
	coeff := 2 * c

	var sPrev, sPrev2 complex128
	for i := 0; i < n; i++ {
		x := complex(float64(samples[i].Real), float64(samples[i].Imag))
		cur := x + complex(coeff, 0)*sPrev - sPrev2
		sPrev2 = sPrev
		sPrev = cur
	}

	I := sPrev*complex(c, 0) - sPrev2
	Q := sPrev * complex(s, 0)

	w2 := 2 * stdmath.Pi * k
	c2 := stdmath.Cos(w2)
	s2 := stdmath.Sin(w2)
	Ip := I*complex(c2, 0) + Q*complex(s2, 0)
	Qp := -I*complex(s2, 0) + Q*complex(c2, 0)

	outRe := (real(Ip) - imag(Qp)) / float64(n)
	outIm := (imag(Ip) + real(Qp)) / float64(n)
	return base.NewComplex(float32(outRe), float32(outIm))
}

// CalculateMultipleDFTBinsGoertzel writes one Goertzel output per bin
// into out and returns the subspan of out written. Output length must
// be at least the bin count.
func CalculateMultipleDFTBinsGoertzel(samples []base.Complex[float32], bins []float64, out []base.Complex[float32]) []base.Complex[float32] {
	assertf(len(out) >= len(bins), "CalculateMultipleDFTBinsGoertzel: output span shorter than bin count")
	for i, k := range bins {
		out[i] = CalculateDFTBinGoertzel(samples, k)
	}
	return out[:len(bins)]
}

// CalculateDFTNaive computes DFT[k]/N directly from its definition,
// used as a cross-check oracle for the Goertzel recurrence above
// (Goertzel trades O(N) per-bin evaluation for the same result as the
// textbook sum).
func CalculateDFTNaive(samples []base.Complex[float32], k float64) base.Complex[float32] {
	assertf(len(samples) > 0, "CalculateDFTNaive: input span must be non-empty")
	n := len(samples)
	var sum complex128
	for i := 0; i < n; i++ {
		angle := -2 * stdmath.Pi * k * float64(i) / float64(n)
		rot := complex(stdmath.Cos(angle), stdmath.Sin(angle))
		x := complex(float64(samples[i].Real), float64(samples[i].Imag))
		sum += x * rot
	}
	sum /= complex(float64(n), 0)
	return base.NewComplex(float32(real(sum)), float32(imag(sum)))
}
