package simd

import "github.com/kc0gdh/radiocore/base"

// Lane is the constraint on element types a Register may hold: the
// unsigned integer and real-float element types named by the
// vectorized-type registry (uint16, uint32, float32, half).
type Lane interface {
	uint16 | ~uint32 | ~float32 | base.Half
}

// Register is the portable, fixed-width vector handle for real-number
// lanes. It is slice-backed rather than array-backed: Go has no const
// generic that could parametrize a type by its lane count N, so a
// single generic Register[T] stands in for the whole Float2/Float3/
// Float4/Float8 family, with N fixed at construction and enforced
// at every lane-count-sensitive operation (see the named constructors
// in named.go and DESIGN.md's Open Questions entry on this).
type Register[T Lane] struct {
	data []T
}

// Load constructs a register whose lane i equals src[i].
func Load[T Lane](src []T) Register[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Register[T]{data: data}
}

// Broadcast constructs an n-lane register with value in every lane.
func Broadcast[T Lane](n int, value T) Register[T] {
	data := make([]T, n)
	base.Unroll(n, func(i int) { data[i] = value })
	return Register[T]{data: data}
}

// Zero constructs an n-lane register of zero values.
func Zero[T Lane](n int) Register[T] {
	var zero T
	return Broadcast(n, zero)
}

// FromHalves constructs an 8-lane register from two 4-lane halves, the
// inverse of ExtractLow/ExtractHigh.
func FromHalves[T Lane](low, high Register[T]) Register[T] {
	if low.Lanes() != 4 || high.Lanes() != 4 {
		panic("simd: FromHalves requires two 4-lane registers")
	}
	data := make([]T, 8)
	copy(data[:4], low.data)
	copy(data[4:], high.data)
	return Register[T]{data: data}
}

// Lanes returns the lane count N.
func (r Register[T]) Lanes() int {
	return len(r.data)
}

// IsVectorized reports kIsVectorized: true iff the storage backing this
// register is an ISA register rather than a plain array/slice. Storage
// here is always a Go slice, so this is unconditionally false; Name
// still reports the native backend this target would select, which is
// a separate question from what is actually stored.
func (r Register[T]) IsVectorized() bool {
	return isVectorized(len(r.data))
}

// Name returns a diagnostic backend name, e.g. "Neon", "Scalar", "Float4x2".
func (r Register[T]) Name() string {
	var zero T
	elementName := "Reg"
	switch any(zero).(type) {
	case float32:
		elementName = "Float"
	case base.Half:
		elementName = "Half"
	case uint16:
		elementName = "Uint16"
	case uint32:
		elementName = "Uint32"
	}
	return backendName(elementName, len(r.data))
}

// Store writes the register's lanes into dst, up to min(len(dst), N).
func (r Register[T]) Store(dst []T) {
	n := len(dst)
	if len(r.data) < n {
		n = len(r.data)
	}
	copy(dst[:n], r.data[:n])
}

// Data exposes the underlying slice; primarily for tests and the
// kernel package's load/store interop.
func (r Register[T]) Data() []T {
	return r.data
}

// Extract asserts i < N and returns lane i.
func (r Register[T]) Extract(i int) T {
	if i < 0 || i >= len(r.data) {
		panic("simd: Register lane index out of range")
	}
	return r.data[i]
}

// SetLane returns a functional copy of r with lane i set to v; all
// other lanes are unchanged.
func (r Register[T]) SetLane(i int, v T) Register[T] {
	if i < 0 || i >= len(r.data) {
		panic("simd: Register lane index out of range")
	}
	data := make([]T, len(r.data))
	copy(data, r.data)
	data[i] = v
	return Register[T]{data: data}
}

// ExtractLow returns the low N/2 lanes; only defined for N a power of
// two and N >= 4.
func (r Register[T]) ExtractLow() Register[T] {
	n := len(r.data)
	if n < 4 || n&(n-1) != 0 {
		panic("simd: ExtractLow requires N a power of two and N >= 4")
	}
	return Load(r.data[:n/2])
}

// ExtractHigh returns the high N/2 lanes; only defined for N a power of
// two and N >= 4.
func (r Register[T]) ExtractHigh() Register[T] {
	n := len(r.data)
	if n < 4 || n&(n-1) != 0 {
		panic("simd: ExtractHigh requires N a power of two and N >= 4")
	}
	return Load(r.data[n/2:])
}

func toFloat64[T Lane](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case base.Half:
		return x.Float64()
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	default:
		panic("simd: unreachable Lane type")
	}
}

func fromFloat64[T Lane](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case base.Half:
		return any(base.NewHalfFromFloat64(v)).(T)
	case uint16:
		return any(uint16(v)).(T)
	case uint32:
		return any(uint32(v)).(T)
	default:
		panic("simd: unreachable Lane type")
	}
}
