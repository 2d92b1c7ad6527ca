package base

import "testing"

func TestHalfRoundTrip(t *testing.T) {
	cases := []float32{0, 1, -1, 0.5, 65504, -65504, 3.14159, 1e-5}
	for _, f := range cases {
		h := NewHalf(f)
		got := h.Float32()
		if diff := got - f; diff > 0.01 || diff < -0.01 {
			t.Errorf("Half round trip for %v: got %v", f, got)
		}
	}
}

func TestHalfSpecialValues(t *testing.T) {
	if !HalfFromBits(0x7C00).IsInf() {
		t.Error("expected +inf")
	}
	if !HalfFromBits(0x7E00).IsNaN() {
		t.Error("expected NaN")
	}
	if !HalfFromBits(0x0000).IsZero() {
		t.Error("expected zero")
	}
	if !HalfFromBits(0x8000).IsNegative() {
		t.Error("expected sign bit set")
	}
}

func TestHalfArithmetic(t *testing.T) {
	a := NewHalf(2)
	b := NewHalf(3)
	if got := HalfAdd(a, b).Float32(); got != 5 {
		t.Errorf("HalfAdd = %v, want 5", got)
	}
	if got := HalfMul(a, b).Float32(); got != 6 {
		t.Errorf("HalfMul = %v, want 6", got)
	}
	if got := HalfNeg(a).Float32(); got != -2 {
		t.Errorf("HalfNeg = %v, want -2", got)
	}
}
