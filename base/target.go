package base

import (
	"os"
	"strconv"
)

// Target capability flags are decided once, at process start, from
// CPU/arch feature probing (golang.org/x/sys/cpu) or build constraints.
// They are read-only afterwards: "no runtime dispatch" here means no
// per-call reconsideration of the feature set.
//
// RADIOCORE_NO_SIMD forces every ISA flag below to false, so simd
// selects its Scalar dispatch level.
var (
	targetIsX86                  bool
	targetIs64Bit                bool
	hasNEON                      bool
	hasSSE2                      bool
	hasSSE3                      bool
	hasSSE41                     bool
	hasAVX                       bool
	hasAVX2                      bool
	hasFMA                       bool
	hasHalfVectorArithmetic      bool
	hasBitCastBuiltin            = true // Go's math.Float32bits/frombits always available
)

// IsX86 reports whether the target is the x86 family.
func IsX86() bool { return targetIsX86 }

// Is64Bit reports whether the target is a 64-bit architecture.
func Is64Bit() bool { return targetIs64Bit }

// HasNEON reports whether Arm NEON is present.
func HasNEON() bool { return hasNEON }

// HasSSE2 reports whether x86 SSE2 is present.
func HasSSE2() bool { return hasSSE2 }

// HasSSE3 reports whether x86 SSE3 is present.
func HasSSE3() bool { return hasSSE3 }

// HasSSE41 reports whether x86 SSE4.1 is present.
func HasSSE41() bool { return hasSSE41 }

// HasAVX reports whether x86 AVX is present.
func HasAVX() bool { return hasAVX }

// HasAVX2 reports whether x86 AVX2 is present.
func HasAVX2() bool { return hasAVX2 }

// HasFMA reports whether fused multiply-add is present.
func HasFMA() bool { return hasFMA }

// HasBitCastBuiltin reports whether a builtin bit-cast is usable; Go
// always has one (math.Float32bits/Float32frombits and friends).
func HasBitCastBuiltin() bool { return hasBitCastBuiltin }

// HasHalfVectorArithmetic reports whether native half-precision vector
// arithmetic is present (as opposed to scalar emulation via float32).
func HasHalfVectorArithmetic() bool { return hasHalfVectorArithmetic }

// noSimdEnv checks RADIOCORE_NO_SIMD, the scalar-fallback override
// every arch's init() consults before probing CPU features.
func noSimdEnv() bool {
	val := os.Getenv("RADIOCORE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// enableF16Env checks RADIOCORE_ENABLE_F16, opting into half-vector
// backends on platforms where feature detection is known to be
// unreliable.
func enableF16Env() bool {
	val := os.Getenv("RADIOCORE_ENABLE_F16")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
