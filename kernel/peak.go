package kernel

// PerPointLerpPeakDetector maintains a per-point tracked peak in state
// (caller-owned, read as the previous peak and overwritten with the
// new one): state[i] = lerp(state[i], samples[i], attack if
// samples[i] > state[i] else release). Returns the written subspan of
// state. Not required to be vectorized; this is the scalar
// implementation the contract permits.
func PerPointLerpPeakDetector(samples []float32, state []float32, attack, release float32) []float32 {
	assertf(len(state) >= len(samples), "PerPointLerpPeakDetector: state span shorter than input")
	for i, x := range samples {
		rate := release
		if x > state[i] {
			rate = attack
		}
		state[i] = lerp(state[i], x, rate)
	}
	return state[:len(samples)]
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
