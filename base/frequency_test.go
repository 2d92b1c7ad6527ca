package base

import "testing"

func TestFrequencyLiteralHelpers(t *testing.T) {
	if got := MHz(145.8); got != Hz(145800000) {
		t.Errorf("MHz(145.8) = %v, want 145800000", got)
	}
	if got := KHz(1); got != Hz(1000) {
		t.Errorf("KHz(1) = %v", got)
	}
	if got := GHz(1); got != Hz(1e9) {
		t.Errorf("GHz(1) = %v", got)
	}
}

func TestFrequencyArithmetic(t *testing.T) {
	a := MHz(100)
	b := KHz(500)
	if got := a + b; got != Hz(100500000) {
		t.Errorf("a+b = %v", got)
	}
}

func TestFrequencyRoundAndMod(t *testing.T) {
	if got := Hz(100.6).Round(); got != Hz(101) {
		t.Errorf("Round = %v", got)
	}
	if got := Hz(10).Mod(Hz(3)); got != Hz(1) {
		t.Errorf("Mod = %v, want 1", got)
	}
}
