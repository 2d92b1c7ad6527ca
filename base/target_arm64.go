//go:build arm64

package base

import "golang.org/x/sys/cpu"

func init() {
	targetIsX86 = false
	targetIs64Bit = true
	hasNEON = true // mandatory baseline on arm64

	if noSimdEnv() {
		hasNEON = false
		return
	}

	// golang.org/x/sys/cpu feature detection for FP16 vector arithmetic
	// on Linux arm64 is known to be unreliable on some kernels; default
	// to the safe (scalar-emulated half) path unless explicitly opted in.
	if enableF16Env() {
		hasHalfVectorArithmetic = cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
	}
}
