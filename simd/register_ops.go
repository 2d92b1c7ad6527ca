package simd

import (
	stdmath "math"

	"github.com/kc0gdh/radiocore/base"
)

func addHelper[T Lane](a, b T) T {
	switch av := any(a).(type) {
	case uint16:
		return any(av + any(b).(uint16)).(T)
	case uint32:
		return any(av + any(b).(uint32)).(T)
	case float32:
		return any(av + any(b).(float32)).(T)
	case base.Half:
		return any(base.HalfAdd(av, any(b).(base.Half))).(T)
	default:
		panic("simd: unreachable Lane type")
	}
}

func subHelper[T Lane](a, b T) T {
	switch av := any(a).(type) {
	case uint16:
		return any(av - any(b).(uint16)).(T)
	case uint32:
		return any(av - any(b).(uint32)).(T)
	case float32:
		return any(av - any(b).(float32)).(T)
	case base.Half:
		return any(base.HalfSub(av, any(b).(base.Half))).(T)
	default:
		panic("simd: unreachable Lane type")
	}
}

func mulHelper[T Lane](a, b T) T {
	switch av := any(a).(type) {
	case uint16:
		return any(av * any(b).(uint16)).(T)
	case uint32:
		return any(av * any(b).(uint32)).(T)
	case float32:
		return any(av * any(b).(float32)).(T)
	case base.Half:
		return any(base.HalfMul(av, any(b).(base.Half))).(T)
	default:
		panic("simd: unreachable Lane type")
	}
}

func divHelper[T Lane](a, b T) T {
	switch av := any(a).(type) {
	case uint16:
		return any(av / any(b).(uint16)).(T)
	case uint32:
		return any(av / any(b).(uint32)).(T)
	case float32:
		return any(av / any(b).(float32)).(T)
	case base.Half:
		return any(base.HalfDiv(av, any(b).(base.Half))).(T)
	default:
		panic("simd: unreachable Lane type")
	}
}

func negHelper[T Lane](a T) T {
	switch av := any(a).(type) {
	case uint16:
		return any(-av).(T)
	case uint32:
		return any(-av).(T)
	case float32:
		return any(-av).(T)
	case base.Half:
		return any(base.HalfNeg(av)).(T)
	default:
		panic("simd: unreachable Lane type")
	}
}

func lessHelper[T Lane](a, b T) bool {
	switch av := any(a).(type) {
	case uint16:
		return av < any(b).(uint16)
	case uint32:
		return av < any(b).(uint32)
	case float32:
		return av < any(b).(float32)
	case base.Half:
		return base.HalfLess(av, any(b).(base.Half))
	default:
		panic("simd: unreachable Lane type")
	}
}

func greaterHelper[T Lane](a, b T) bool {
	return lessHelper(b, a)
}

func binaryOp[T Lane](a, b Register[T], op func(T, T) T) Register[T] {
	if a.Lanes() != b.Lanes() {
		panic("simd: lane count mismatch")
	}
	out := make([]T, a.Lanes())
	for i := range out {
		out[i] = op(a.data[i], b.data[i])
	}
	return Register[T]{data: out}
}

// Add returns a + b, per lane.
func Add[T Lane](a, b Register[T]) Register[T] { return binaryOp(a, b, addHelper[T]) }

// Sub returns a - b, per lane.
func Sub[T Lane](a, b Register[T]) Register[T] { return binaryOp(a, b, subHelper[T]) }

// Mul returns a * b, per lane.
func Mul[T Lane](a, b Register[T]) Register[T] { return binaryOp(a, b, mulHelper[T]) }

// Div returns a / b, per lane.
func Div[T Lane](a, b Register[T]) Register[T] { return binaryOp(a, b, divHelper[T]) }

// Neg returns -v, per lane.
func Neg[T Lane](v Register[T]) Register[T] {
	out := make([]T, v.Lanes())
	for i, x := range v.data {
		out[i] = negHelper(x)
	}
	return Register[T]{data: out}
}

// MulScalar returns v scaled by s in every lane.
func MulScalar[T Lane](v Register[T], s T) Register[T] {
	out := make([]T, v.Lanes())
	for i, x := range v.data {
		out[i] = mulHelper(x, s)
	}
	return Register[T]{data: out}
}

// Min returns the per-lane minimum of a and b.
func Min[T Lane](a, b Register[T]) Register[T] {
	return binaryOp(a, b, func(x, y T) T {
		if lessHelper(x, y) {
			return x
		}
		return y
	})
}

// Max returns the per-lane maximum of a and b.
func Max[T Lane](a, b Register[T]) Register[T] {
	return binaryOp(a, b, func(x, y T) T {
		if greaterHelper(x, y) {
			return x
		}
		return y
	})
}

// Abs returns the per-lane absolute value.
func Abs[T Lane](v Register[T]) Register[T] {
	out := make([]T, v.Lanes())
	for i, x := range v.data {
		out[i] = fromFloat64[T](stdmath.Abs(toFloat64(x)))
	}
	return Register[T]{data: out}
}

// Sign returns -1, 0 or 1 per lane according to the sign of each element.
func Sign[T Lane](v Register[T]) Register[T] {
	out := make([]T, v.Lanes())
	for i, x := range v.data {
		f := toFloat64(x)
		switch {
		case f > 0:
			out[i] = fromFloat64[T](1)
		case f < 0:
			out[i] = fromFloat64[T](-1)
		default:
			out[i] = fromFloat64[T](0)
		}
	}
	return Register[T]{data: out}
}

// CopySign returns |a| with the sign of b, per lane.
func CopySign[T Lane](a, b Register[T]) Register[T] {
	return binaryOp(a, b, func(x, y T) T {
		return fromFloat64[T](stdmath.Copysign(toFloat64(x), toFloat64(y)))
	})
}

// MultiplyAdd returns a*b + c, per lane.
func MultiplyAdd[T Lane](a, b, c Register[T]) Register[T] {
	if a.Lanes() != b.Lanes() || a.Lanes() != c.Lanes() {
		panic("simd: lane count mismatch")
	}
	out := make([]T, a.Lanes())
	for i := range out {
		out[i] = addHelper(mulHelper(a.data[i], b.data[i]), c.data[i])
	}
	return Register[T]{data: out}
}

// Select combines a and b bit-for-bit using mask: result lane i is a's
// lane if mask.Get(i), else b's lane.
func Select[T Lane](mask Mask[T], a, b Register[T]) Register[T] {
	if mask.Lanes() != a.Lanes() || mask.Lanes() != b.Lanes() {
		panic("simd: lane count mismatch")
	}
	out := make([]T, a.Lanes())
	for i := range out {
		if mask.Get(i) {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Register[T]{data: out}
}

// Reverse returns a register with Reverse(a)[i] == a[N-1-i].
func Reverse[T Lane](v Register[T]) Register[T] {
	n := v.Lanes()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = v.data[n-1-i]
	}
	return Register[T]{data: out}
}

// HorizontalSum returns the sum of all lanes.
func HorizontalSum[T Lane](v Register[T]) T {
	var acc float64
	for _, x := range v.data {
		acc += toFloat64(x)
	}
	return fromFloat64[T](acc)
}

// HorizontalMax returns the maximum lane value; v must be non-empty.
func HorizontalMax[T Lane](v Register[T]) T {
	if len(v.data) == 0 {
		panic("simd: HorizontalMax requires a non-empty register")
	}
	best := v.data[0]
	for _, x := range v.data[1:] {
		if greaterHelper(x, best) {
			best = x
		}
	}
	return best
}

func compareOp[T Lane](a, b Register[T], cmp func(T, T) bool) Mask[T] {
	if a.Lanes() != b.Lanes() {
		panic("simd: lane count mismatch")
	}
	bits := make([]bool, a.Lanes())
	for i := range bits {
		bits[i] = cmp(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// LessThan compares a < b per lane.
func LessThan[T Lane](a, b Register[T]) Mask[T] { return compareOp(a, b, lessHelper[T]) }

// GreaterThan compares a > b per lane.
func GreaterThan[T Lane](a, b Register[T]) Mask[T] { return compareOp(a, b, greaterHelper[T]) }

// invLn2 (1/ln 2) and invLog2_10 (1/log2 10) convert FastLog10's
// natural-log series result to log2 and then to log10.
const (
	invLn2     = 1.4426950408889634
	invLog2_10 = 0.30102999566398114
)

// fastLog10Float32 computes log10(x) via exponent extraction plus a
// series for the log of the normalized mantissa m:
// log2(x) = exponent + log2(m), then log10(x) = log2(x) / log2(10).
// ln(m) is the series 2*atanh(z) with z = (m-1)/(m+1), truncated after
// the z^9 term; it is exactly 0 at m=1 so FastLog10(1) == 0 exactly.
func fastLog10Float32(x float32) float32 {
	if x <= 0 {
		if x == 0 {
			return float32(stdmath.Inf(-1))
		}
		return float32(stdmath.NaN())
	}
	bits := stdmath.Float32bits(x)
	exp := int32((bits>>23)&0xFF) - 127
	mantissaBits := (bits &^ uint32(0xFF800000)) | 0x3F800000
	m := float64(stdmath.Float32frombits(mantissaBits))

	// Narrow the reduction range from [1,2) to roughly [0.707,1.414) by
	// pulling a further factor of two out of mantissas above sqrt(2);
	// this keeps |z| below about 0.172, where the series below converges
	// fast enough that five terms track ln(m) closely across the octave.
	if m > stdmath.Sqrt2 {
		m *= 0.5
		exp++
	}

	z := (m - 1) / (m + 1)
	z2 := z * z
	lnm := 2 * z * (1 + z2*(1.0/3+z2*(1.0/5+z2*(1.0/7+z2/9))))
	log2x := float64(exp) + lnm*invLn2
	return float32(log2x * invLog2_10)
}

// FastLog10 computes a monotone approximation of log10(x) per lane,
// exact 0 at x == 1.
func FastLog10[T Lane](v Register[T]) Register[T] {
	out := make([]T, v.Lanes())
	for i, x := range v.data {
		out[i] = fromFloat64[T](float64(fastLog10Float32(float32(toFloat64(x)))))
	}
	return Register[T]{data: out}
}

// Sin returns sin(x) per lane.
func Sin[T Lane](v Register[T]) Register[T] { return unaryMath(v, stdmath.Sin) }

// Cos returns cos(x) per lane.
func Cos[T Lane](v Register[T]) Register[T] { return unaryMath(v, stdmath.Cos) }

// Exp returns e^x per lane.
func Exp[T Lane](v Register[T]) Register[T] { return unaryMath(v, stdmath.Exp) }

// SinCos returns (sin(x), cos(x)) per lane as two registers.
func SinCos[T Lane](v Register[T]) (Register[T], Register[T]) {
	return Sin(v), Cos(v)
}

func unaryMath[T Lane](v Register[T], f func(float64) float64) Register[T] {
	out := make([]T, v.Lanes())
	for i, x := range v.data {
		out[i] = fromFloat64[T](f(toFloat64(x)))
	}
	return Register[T]{data: out}
}

// SquaredNorm returns the sum of squares of the lanes (real-vector
// analogue of complex Norm).
func SquaredNorm[T Lane](v Register[T]) T {
	var acc float64
	for _, x := range v.data {
		f := toFloat64(x)
		acc += f * f
	}
	return fromFloat64[T](acc)
}

// Norm returns sqrt(SquaredNorm(v)).
func Norm[T Lane](v Register[T]) T {
	return fromFloat64[T](stdmath.Sqrt(toFloat64(SquaredNorm(v))))
}

// DotReal returns the real dot product sum(a[i]*b[i]).
func DotReal[T Lane](a, b Register[T]) T {
	if a.Lanes() != b.Lanes() {
		panic("simd: lane count mismatch")
	}
	var acc float64
	for i := range a.data {
		acc += toFloat64(a.data[i]) * toFloat64(b.data[i])
	}
	return fromFloat64[T](acc)
}
