package simd

import (
	"strconv"

	"github.com/kc0gdh/radiocore/base"
)

// Float is the public alias for a real-float register; the actual
// lane count is fixed by whichever New* constructor below produced it.
type Float = Register[float32]

// HalfVec is the public alias for a half-precision real register.
type HalfVec = Register[base.Half]

// Uint16Vec and Uint32Vec are the public aliases for the unsigned
// integer register families.
type Uint16Vec = Register[uint16]
type Uint32Vec = Register[uint32]

// NewFloat2 constructs a 2-lane float register.
func NewFloat2(v0, v1 float32) Float { return Load([]float32{v0, v1}) }

// NewFloat3 constructs a 3-lane float register.
func NewFloat3(v0, v1, v2 float32) Float { return Load([]float32{v0, v1, v2}) }

// NewFloat4 constructs a 4-lane float register.
func NewFloat4(v0, v1, v2, v3 float32) Float { return Load([]float32{v0, v1, v2, v3}) }

// NewFloat4Array constructs a 4-lane float register from an array.
func NewFloat4Array(a [4]float32) Float { return Load(a[:]) }

// NewFloat4Broadcast constructs a 4-lane float register with v in every lane.
func NewFloat4Broadcast(v float32) Float { return Broadcast(4, v) }

// NewFloat8 constructs an 8-lane float register.
func NewFloat8(v0, v1, v2, v3, v4, v5, v6, v7 float32) Float {
	return Load([]float32{v0, v1, v2, v3, v4, v5, v6, v7})
}

// NewFloat8Broadcast constructs an 8-lane float register with v in every lane.
func NewFloat8Broadcast(v float32) Float { return Broadcast(8, v) }

// NewFloat8FromHalves constructs an 8-lane register from two 4-lane halves.
func NewFloat8FromHalves(low, high Float) Float { return FromHalves(low, high) }

// NewHalf4 constructs a 4-lane half-precision register.
func NewHalf4(v0, v1, v2, v3 base.Half) HalfVec {
	return Load([]base.Half{v0, v1, v2, v3})
}

// NewHalf8 constructs an 8-lane half-precision register.
func NewHalf8(v0, v1, v2, v3, v4, v5, v6, v7 base.Half) HalfVec {
	return Load([]base.Half{v0, v1, v2, v3, v4, v5, v6, v7})
}

// NewHalf8FromHalves constructs an 8-lane half register from two 4-lane halves.
func NewHalf8FromHalves(low, high HalfVec) HalfVec { return FromHalves(low, high) }

// NewUint16x4 constructs a 4-lane uint16 register.
func NewUint16x4(v0, v1, v2, v3 uint16) Uint16Vec {
	return Load([]uint16{v0, v1, v2, v3})
}

// NewUint16x8 constructs an 8-lane uint16 register.
func NewUint16x8(v0, v1, v2, v3, v4, v5, v6, v7 uint16) Uint16Vec {
	return Load([]uint16{v0, v1, v2, v3, v4, v5, v6, v7})
}

// NewUint32x4 constructs a 4-lane uint32 register.
func NewUint32x4(v0, v1, v2, v3 uint32) Uint32Vec {
	return Load([]uint32{v0, v1, v2, v3})
}

// NewUint32x8 constructs an 8-lane uint32 register.
func NewUint32x8(v0, v1, v2, v3, v4, v5, v6, v7 uint32) Uint32Vec {
	return Load([]uint32{v0, v1, v2, v3, v4, v5, v6, v7})
}

// X returns lane 0. Valid for N >= 1.
func (r Register[T]) X() T { return r.Extract(0) }

// Y returns lane 1. Valid for N >= 2.
func (r Register[T]) Y() T { return r.Extract(1) }

// Z returns lane 2. Valid for N >= 3.
func (r Register[T]) Z() T { return r.Extract(2) }

// W returns lane 3. Valid for N >= 4.
func (r Register[T]) W() T { return r.Extract(3) }

// String formats the register as "{v0, v1, ..., v_{N-1}}".
func (r Register[T]) String() string {
	out := "{"
	for i, x := range r.data {
		if i > 0 {
			out += ", "
		}
		out += formatLane(x)
	}
	return out + "}"
}

func formatLane[T Lane](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case base.Half:
		return x.String()
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	default:
		return ""
	}
}
