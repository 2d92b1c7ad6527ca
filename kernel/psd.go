package kernel

import (
	"github.com/kc0gdh/radiocore/base"
	"github.com/kc0gdh/radiocore/simd"
)

// PowerSpectralDensity writes 10*log10(|z|^2) per sample into out using
// FastLog10. Output length equals input length.
func PowerSpectralDensity(samples []base.Complex[float32], out []float32) []float32 {
	assertf(len(out) >= len(samples), "PowerSpectralDensity: output span shorter than input")
	n := len(samples)
	eight, four, _ := peelCounts(n)

	var i int
	for ; i < eight; i += 8 {
		psdGroup(samples[i:i+8], out[i:i+8])
	}
	for ; i < eight+four; i += 4 {
		psdGroup(samples[i:i+4], out[i:i+4])
	}
	for ; i < n; i++ {
		out[i] = 10 * float32(simd.FastLog10(simd.Broadcast(1, samples[i].Norm())).Extract(0))
	}
	return out[:n]
}

func psdGroup(samples []base.Complex[float32], out []float32) {
	width := len(samples)
	norms := make([]float32, width)
	for j, s := range samples {
		norms[j] = s.Norm()
	}
	logs := simd.FastLog10(simd.Load(norms))
	for j := 0; j < width; j++ {
		out[j] = 10 * logs.Extract(j)
	}
}
