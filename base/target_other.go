//go:build !amd64 && !arm64

package base

import "strconv"

func init() {
	targetIsX86 = false
	targetIs64Bit = strconv.IntSize == 64
	// No vectorized backend is known for this architecture; every
	// vectorized type falls back to its scalar emulation.
}
