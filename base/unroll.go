package base

// Unroll calls f(i) for i in [0, n) without expecting the compiler to do
// anything more clever than inline a small, fixed-trip-count loop. Go has
// no compile-time integer generics, so the "compile-time unroll" of the
// original becomes an ordinary loop over a small, typically-constant n;
// callers that need the original's guarantee of no runtime branch should
// keep n small and let the Go compiler's own inlining/unrolling handle it.
func Unroll(n int, f func(i int)) {
	for i := 0; i < n; i++ {
		f(i)
	}
}

// Unroll2D nests two Unroll expansions: for i in [0,n), for j in [0,m).
func Unroll2D(n, m int, f func(i, j int)) {
	Unroll(n, func(i int) {
		Unroll(m, func(j int) {
			f(i, j)
		})
	})
}
