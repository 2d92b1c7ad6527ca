package base

import stdmath "math"

// Frequency is a scalar quantity measured in Hz, stored as a binary64
// double. Arithmetic mirrors double; Round and Mod are provided for the
// operations that have no natural Go operator.
type Frequency float64

// Hz, KHz, MHz and GHz are the Go-side equivalent of the original's
// literal suffixes (_Hz/_kHz/_MHz/_GHz), since Go has no user-defined
// numeric literals.
func Hz(v float64) Frequency  { return Frequency(v) }
func KHz(v float64) Frequency { return Frequency(v * 1e3) }
func MHz(v float64) Frequency { return Frequency(v * 1e6) }
func GHz(v float64) Frequency { return Frequency(v * 1e9) }

// Float64 converts the frequency back to a plain float64 of Hz.
func (f Frequency) Float64() float64 { return float64(f) }

// Round returns the frequency rounded to the nearest integer Hz.
func (f Frequency) Round() Frequency {
	return Frequency(stdmath.Round(float64(f)))
}

// Mod returns the floating-point remainder of f / g, matching
// Frequency's fmod-backed modulo operation.
func (f Frequency) Mod(g Frequency) Frequency {
	return Frequency(stdmath.Mod(float64(f), float64(g)))
}

// String prints the frequency the same way the underlying double would.
func (f Frequency) String() string {
	return formatFloat(float64(f))
}
