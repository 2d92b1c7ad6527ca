package simd

import (
	"math"
	"testing"

	"github.com/kc0gdh/radiocore/base"
)

func TestComplexRegisterAbsNorm(t *testing.T) {
	r := NewComplex4(
		base.NewComplex[float32](2, 3),
		base.NewComplex[float32](4, 0),
		base.NewComplex[float32](0, 5),
		base.NewComplex[float32](-1, -1),
	)
	abs := ComplexAbs(r)
	want := []float64{math.Sqrt(13), 4, 5, math.Sqrt(2)}
	for i, w := range want {
		if got := float64(abs.Extract(i)); math.Abs(got-w) > 1e-5 {
			t.Errorf("lane %d: Abs = %v, want %v", i, got, w)
		}
	}
}

func TestComplexRegisterMulDiv(t *testing.T) {
	a := NewComplex4(
		base.NewComplex[float32](1, 2),
		base.NewComplex[float32](3, -1),
		base.NewComplex[float32](0, 1),
		base.NewComplex[float32](5, 5),
	)
	b := NewComplex4(
		base.NewComplex[float32](3, -1),
		base.NewComplex[float32](1, 2),
		base.NewComplex[float32](1, 0),
		base.NewComplex[float32](1, -1),
	)
	mul := ComplexMul(a, b)
	expect := []base.Complex[float32]{
		base.NewComplex[float32](1, 2).Mul(base.NewComplex[float32](3, -1)),
		base.NewComplex[float32](3, -1).Mul(base.NewComplex[float32](1, 2)),
		base.NewComplex[float32](0, 1).Mul(base.NewComplex[float32](1, 0)),
		base.NewComplex[float32](5, 5).Mul(base.NewComplex[float32](1, -1)),
	}
	for i, want := range expect {
		got := mul.At(i)
		if got.Real != want.Real || got.Imag != want.Imag {
			t.Errorf("lane %d: Mul = %v, want %v", i, got, want)
		}
	}

	div := ComplexDiv(a, b)
	for i := 0; i < 4; i++ {
		want := a.At(i).Div(b.At(i))
		got := div.At(i)
		if math.Abs(float64(got.Real-want.Real)) > 1e-5 || math.Abs(float64(got.Imag-want.Imag)) > 1e-5 {
			t.Errorf("lane %d: Div = %v, want %v", i, got, want)
		}
	}
}

func TestComplexRegisterConjReverse(t *testing.T) {
	r := NewComplex4(
		base.NewComplex[float32](1, 2),
		base.NewComplex[float32](3, 4),
		base.NewComplex[float32](5, 6),
		base.NewComplex[float32](7, 8),
	)
	conj := ComplexConj(r)
	for i := 0; i < 4; i++ {
		if conj.At(i).Imag != -r.At(i).Imag {
			t.Errorf("lane %d: Conj did not flip imag", i)
		}
	}
	rev := ComplexReverse(r)
	for i := 0; i < 4; i++ {
		if rev.At(i) != r.At(3-i) {
			t.Errorf("Reverse lane %d mismatch", i)
		}
	}
}

func TestComplexHorizontalSum(t *testing.T) {
	r := NewComplex4(
		base.NewComplex[float32](1, 1),
		base.NewComplex[float32](2, 2),
		base.NewComplex[float32](3, 3),
		base.NewComplex[float32](4, 4),
	)
	sum := ComplexHorizontalSum(r)
	if sum.Real != 10 || sum.Imag != 10 {
		t.Errorf("HorizontalSum = %v, want (10,10)", sum)
	}
}
