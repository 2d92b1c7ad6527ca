package kernel

import "github.com/kc0gdh/radiocore/simd"

// HorizontalMax returns the maximum scalar value in a non-empty span,
// opening four 8-lane accumulators seeded from samples[0].
func HorizontalMax(samples []float32) float32 {
	assertf(len(samples) > 0, "HorizontalMax: input span must be non-empty")
	n := len(samples)

	acc0 := simd.Broadcast(8, samples[0])
	acc1 := acc0
	acc2 := acc0
	acc3 := acc0

	i := 0
	for ; i+32 <= n; i += 32 {
		acc0 = simd.Max(acc0, simd.Load(samples[i:i+8]))
		acc1 = simd.Max(acc1, simd.Load(samples[i+8:i+16]))
		acc2 = simd.Max(acc2, simd.Load(samples[i+16:i+24]))
		acc3 = simd.Max(acc3, simd.Load(samples[i+24:i+32]))
	}
	merged := simd.Max(simd.Max(acc0, acc1), simd.Max(acc2, acc3))
	best := simd.HorizontalMax(merged)

	for ; i < n; i++ {
		if samples[i] > best {
			best = samples[i]
		}
	}
	return best
}

// HorizontalSum returns the total of a non-empty span, opening four
// 8-lane accumulators seeded from zero.
func HorizontalSum(samples []float32) float32 {
	assertf(len(samples) > 0, "HorizontalSum: input span must be non-empty")
	n := len(samples)

	acc0 := simd.Zero[float32](8)
	acc1 := simd.Zero[float32](8)
	acc2 := simd.Zero[float32](8)
	acc3 := simd.Zero[float32](8)

	i := 0
	for ; i+32 <= n; i += 32 {
		acc0 = simd.Add(acc0, simd.Load(samples[i:i+8]))
		acc1 = simd.Add(acc1, simd.Load(samples[i+8:i+16]))
		acc2 = simd.Add(acc2, simd.Load(samples[i+16:i+24]))
		acc3 = simd.Add(acc3, simd.Load(samples[i+24:i+32]))
	}
	merged := simd.Add(simd.Add(acc0, acc1), simd.Add(acc2, acc3))
	sum := simd.HorizontalSum(merged)

	for ; i < n; i++ {
		sum += samples[i]
	}
	return sum
}
