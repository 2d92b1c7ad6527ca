package base

// AlignedNumber is the constraint on elements an AlignedRegister may hold:
// the uint16/uint32/float32/float64 lane types plus Half. Complex values
// are not included.
type AlignedNumber interface {
	uint16 | ~uint32 | ~float32 | ~float64 | Half
}

// AlignedRegister is a fixed-size container of n contiguous T values.
// Go gives no way to request the over-alignment (32 bytes for 8-lane
// float backends) the original enforces with `alignas`; this type
// documents but cannot guarantee that alignment — see DESIGN.md. What it
// does guarantee is fixed length and assert-on-out-of-range indexing,
// which is the portion of the contract a Go port can actually keep.
type AlignedRegister[T AlignedNumber] struct {
	data []T
}

// NewAlignedRegister constructs a register of n lanes, each holding the
// zero value of T.
func NewAlignedRegister[T AlignedNumber](n int) AlignedRegister[T] {
	return AlignedRegister[T]{data: make([]T, n)}
}

// NewAlignedRegisterFromArray copies each lane of data into a new
// register of the same length.
func NewAlignedRegisterFromArray[T AlignedNumber](data []T) AlignedRegister[T] {
	out := make([]T, len(data))
	copy(out, data)
	return AlignedRegister[T]{data: out}
}

// NewAlignedRegisterBroadcast fills all n lanes with value.
func NewAlignedRegisterBroadcast[T AlignedNumber](n int, value T) AlignedRegister[T] {
	out := make([]T, n)
	Unroll(n, func(i int) { out[i] = value })
	return AlignedRegister[T]{data: out}
}

// NewAlignedRegisterFromValues constructs a register positionally from
// its arguments, one per lane.
func NewAlignedRegisterFromValues[T AlignedNumber](values ...T) AlignedRegister[T] {
	return NewAlignedRegisterFromArray(values)
}

// Len returns the number of lanes, N.
func (r AlignedRegister[T]) Len() int {
	return len(r.data)
}

// At asserts i < N and returns lane i.
func (r AlignedRegister[T]) At(i int) T {
	if i < 0 || i >= len(r.data) {
		panic("base: AlignedRegister index out of range")
	}
	return r.data[i]
}

// Set asserts i < N and writes lane i.
func (r AlignedRegister[T]) Set(i int, v T) {
	if i < 0 || i >= len(r.data) {
		panic("base: AlignedRegister index out of range")
	}
	r.data[i] = v
}

// Slice exposes the backing storage for load/store interop with simd.Register.
func (r AlignedRegister[T]) Slice() []T {
	return r.data
}
