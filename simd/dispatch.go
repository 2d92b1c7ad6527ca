// Package simd provides fixed-width vectorized registers for unsigned
// integer, float and complex element types, with a uniform source-level
// API and runtime-selected backend naming per architecture. Lane
// arithmetic is always expressed in portable Go so it compiles and runs
// identically regardless of the detected DispatchLevel; the level exists
// to answer "what native backend would this target select" (GetName)
// the way the original trait classes do. It does not imply the storage
// is an ISA register: every Register[T] here is a Go slice processed
// lane by lane, so kIsVectorized (Register.IsVectorized) is always
// false regardless of DispatchLevel.
package simd

import "github.com/kc0gdh/radiocore/base"

// DispatchLevel names the backend a register of a given (element type,
// lane count) pair would select on this target.
type DispatchLevel int

const (
	// Scalar indicates the aligned-array backend (no ISA register).
	Scalar DispatchLevel = iota
	// NEON indicates the Arm NEON backend.
	NEON
	// SSE2 indicates the x86 SSE2 backend.
	SSE2
	// SSE4 indicates the x86 SSE4.1 backend.
	SSE4
	// AVX indicates the x86 AVX backend.
	AVX
	// FMA indicates an AVX backend with fused multiply-add.
	FMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case Scalar:
		return "Scalar"
	case NEON:
		return "Neon"
	case SSE2:
		return "SSE2"
	case SSE4:
		return "SSE4"
	case AVX:
		return "AVX"
	case FMA:
		return "FMA"
	default:
		return "Unknown"
	}
}

var currentLevel DispatchLevel

func init() {
	switch {
	case base.HasNEON():
		currentLevel = NEON
	case base.HasFMA():
		currentLevel = FMA
	case base.HasAVX():
		currentLevel = AVX
	case base.HasSSE41():
		currentLevel = SSE4
	case base.HasSSE2():
		currentLevel = SSE2
	default:
		currentLevel = Scalar
	}
}

// CurrentLevel returns the backend this process would select for the
// widest native registers (4-lane float/uint) on this target.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName is a convenience wrapper over CurrentLevel().String().
func CurrentName() string {
	return currentLevel.String()
}

// levelFor implements the selection rules of the vectorized-type
// registry (§4.4): native backend for 4-lane registers when the
// platform's widest detected backend is non-scalar, composed-from-two-
// halves bookkeeping for 8-lane registers (still reported via the
// narrower level, since an 8-lane register is never itself "native"
// under this port — see DESIGN.md), and scalar for everything else
// (N=2, N=3, or no native backend detected).
func levelFor(lanes int) DispatchLevel {
	if lanes != 4 && lanes != 8 {
		return Scalar
	}
	return currentLevel
}

// isVectorized reports kIsVectorized for a register of the given lane
// count. Storage in this package is always a Go slice processed lane
// by lane, never an ISA register, so this is unconditionally false;
// levelFor/backendName remain as diagnostics for "what native backend
// this target would select", which is a distinct question from what
// the storage actually is.
func isVectorized(lanes int) bool {
	return false
}

// backendName renders GetName() the way the original trait surface
// does, e.g. "Neon", "Scalar", "Float4x2" for an 8-lane register
// composed from two 4-lane halves.
func backendName(elementName string, lanes int) string {
	lvl := levelFor(lanes)
	if lanes == 8 {
		return elementName + "4x2"
	}
	return lvl.String()
}
