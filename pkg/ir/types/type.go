// Package types defines the value types of Fathom IR: scalars (void,
// booleans, integers, floats) and SIMD vectors of them, encoded in a single
// byte. The low nibble identifies the scalar family, the high nibble holds
// log2 of the lane count (0 means scalar, at most 8 for 256 lanes).
package types

import (
	"math/bits"
	"strconv"
)

const maxLog2LaneCount = 8

// Type is the type of an SSA value. Values are compared with ==; two types
// are equal exactly when their scalar family and lane count are equal.
type Type struct {
	raw uint8
}

var (
	// Void is the type of instructions that produce no value. It cannot be
	// a vector lane.
	Void = Type{0x00}

	I8  = Type{0x01}
	I16 = Type{0x02}
	I32 = Type{0x03}
	I64 = Type{0x04}

	F32 = Type{0x05}
	F64 = Type{0x06}

	B1  = Type{0x07}
	B8  = Type{0x08}
	B16 = Type{0x09}
	B32 = Type{0x0a}
	B64 = Type{0x0b}
)

// Scalars returns the predefined scalar types in byte order.
func Scalars() []Type {
	return []Type{Void, I8, I16, I32, I64, F32, F64, B1, B8, B16, B32, B64}
}

// LaneType returns the type of a single lane. A scalar type is its own lane
// type.
func (t Type) LaneType() Type {
	return Type{t.raw & 0x0f}
}

// LaneBits returns the number of bits in one lane, or 0 for void.
func (t Type) LaneBits() uint8 {
	switch t.LaneType() {
	case B1:
		return 1
	case B8, I8:
		return 8
	case B16, I16:
		return 16
	case B32, I32:
		return 32
	case B64, I64:
		return 64
	case F32:
		return 32
	case F64:
		return 64
	default:
		return 0
	}
}

func (t Type) IsVoid() bool {
	return t == Void
}

// IsBool reports whether t is one of the scalar boolean types. Vectors of
// booleans report false; this predicate gates scalar-only operations.
func (t Type) IsBool() bool {
	switch t {
	case B1, B8, B16, B32, B64:
		return true
	default:
		return false
	}
}

// IsInt reports whether t is one of the scalar integer types. Vectors of
// integers report false; this predicate gates scalar-only operations.
func (t Type) IsInt() bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is one of the scalar floating point types.
// Vectors of floats report false; this predicate gates scalar-only
// operations.
func (t Type) IsFloat() bool {
	switch t {
	case F32, F64:
		return true
	default:
		return false
	}
}

// Log2LaneCount returns log2 of the lane count, in [0, 8].
func (t Type) Log2LaneCount() uint8 {
	return t.raw >> 4
}

// IsScalar reports whether t has exactly one lane.
func (t Type) IsScalar() bool {
	return t.Log2LaneCount() == 0
}

// LaneCount returns the number of lanes, a power of two in [1, 256].
func (t Type) LaneCount() uint16 {
	return 1 << t.Log2LaneCount()
}

// Bits returns the total number of bits used to represent a value of this
// type.
func (t Type) Bits() uint16 {
	return uint16(t.LaneBits()) * t.LaneCount()
}

// By returns a vector type with n times the lanes of t. If t is scalar the
// result has t as its lane type and n lanes; if t is already a vector the
// lane counts multiply, so t.By(a).By(b) == t.By(a*b).
//
// By panics when t has zero-width lanes (void), when n is not a power of
// two, or when the result would exceed 256 lanes. These are caller bugs,
// like an out-of-bounds index; a malformed type must never propagate.
func (t Type) By(n uint16) Type {
	if t.LaneBits() == 0 {
		panic("types: vector lanes must have nonzero width")
	}
	if n == 0 || n&(n-1) != 0 {
		panic("types: lane count must be a power of two")
	}
	log2 := uint8(bits.TrailingZeros16(n))
	if t.Log2LaneCount()+log2 > maxLog2LaneCount {
		panic("types: more than 256 lanes")
	}
	return Type{t.raw + log2<<4}
}

// HalfVector returns a vector type with half the lanes of t. It panics when
// t is scalar.
func (t Type) HalfVector() Type {
	if t.IsScalar() {
		panic("types: no half vector of a scalar type")
	}
	return Type{t.raw - 0x10}
}

// Raw returns the encoded byte of t, as written into serialized IR.
func (t Type) Raw() uint8 {
	return t.raw
}

// FromRaw reconstructs a type from its encoded byte. It is the only way to
// obtain a Type from data that did not come from this package, and it
// reports false for any byte that does not encode a valid type: an unknown
// scalar family, a lane count above 256, or a vectorized void.
func FromRaw(raw uint8) (Type, bool) {
	base := raw & 0x0f
	log2 := raw >> 4
	if base > B64.raw || log2 > maxLog2LaneCount {
		return Type{}, false
	}
	if base == Void.raw && log2 != 0 {
		return Type{}, false
	}
	return Type{raw}, true
}

// String renders the canonical text form: "void", "i32", "f64x2", "b1x8".
// The textual IR parser accepts exactly this grammar. Rendering a
// structurally invalid type is a fatal internal-consistency failure.
func (t Type) String() string {
	switch {
	case t.IsVoid():
		return "void"
	case t.IsBool():
		return "b" + strconv.Itoa(int(t.LaneBits()))
	case t.IsInt():
		return "i" + strconv.Itoa(int(t.LaneBits()))
	case t.IsFloat():
		return "f" + strconv.Itoa(int(t.LaneBits()))
	case !t.IsScalar() && t.LaneBits() != 0:
		return t.LaneType().String() + "x" + strconv.Itoa(int(t.LaneCount()))
	default:
		panic("types: invalid type 0x" + strconv.FormatUint(uint64(t.raw), 16))
	}
}
