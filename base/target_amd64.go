//go:build amd64

package base

import "golang.org/x/sys/cpu"

func init() {
	targetIsX86 = true
	targetIs64Bit = true

	if noSimdEnv() {
		return
	}

	hasSSE2 = cpu.X86.HasSSE2
	hasSSE3 = cpu.X86.HasSSE3
	hasSSE41 = cpu.X86.HasSSE41
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2
	hasFMA = cpu.X86.HasAVX && cpu.X86.HasFMA

	// Half-precision vector arithmetic on x86 requires AVX-512 FP16,
	// which golang.org/x/sys/cpu does not yet surface; F16C only
	// accelerates conversions, not arithmetic, so it does not qualify.
	hasHalfVectorArithmetic = false
}
