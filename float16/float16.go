// Package float16 is a thin IEEE-754 binary16 façade over the generic
// format/softfloat packages: a concrete uint16 type with the
// predicate and arithmetic methods users of a hardware half-precision
// type expect, all implemented by delegating to the generic codec
// rather than re-deriving bit tricks for this one width.
package float16

import (
	"fmt"
	"math/big"

	"github.com/zerfoo/softfloat/format"
	"github.com/zerfoo/softfloat/softfloat"
)

// Float16 represents a 16-bit IEEE-754 half-precision floating-point value.
type Float16 uint16

const (
	signMask = 0x8000
	expMask  = 0x7C00
	manMask  = 0x03FF
	manLen   = 10
)

// PositiveZero, NegativeZero, PositiveInfinity, and NegativeInfinity
// are the canonical bit patterns for their respective special values.
const (
	PositiveZero     Float16 = 0x0000
	NegativeZero     Float16 = 0x8000
	PositiveInfinity Float16 = 0x7C00
	NegativeInfinity Float16 = 0xFC00
)

func (f Float16) big() *big.Int { return new(big.Int).SetUint64(uint64(f)) }

func fromBig(b *big.Int) Float16 { return Float16(b.Uint64()) }

// IsZero reports whether f is positive or negative zero.
func (f Float16) IsZero() bool { return (f & 0x7FFF) == 0 }

// IsInf reports whether f is an infinity. sign>0 restricts to +Inf,
// sign<0 restricts to -Inf, sign==0 accepts either.
func (f Float16) IsInf(sign int) bool {
	if (f & 0x7FFF) != PositiveInfinity {
		return false
	}
	if sign == 0 {
		return true
	}
	return (sign > 0) == ((f & signMask) == 0)
}

// IsNaN reports whether f is NaN.
func (f Float16) IsNaN() bool {
	return format.Binary16.ClassifyBits(f.big()) == format.NaN
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f Float16) IsFinite() bool {
	c := format.Binary16.ClassifyBits(f.big())
	return c != format.Infinite && c != format.NaN
}

// IsNormal reports whether f is a normal (not zero, subnormal, infinite, or NaN) value.
func (f Float16) IsNormal() bool {
	return format.Binary16.ClassifyBits(f.big()) == format.Normal
}

// IsSubnormal reports whether f is subnormal.
func (f Float16) IsSubnormal() bool {
	return format.Binary16.ClassifyBits(f.big()) == format.Subnormal
}

// Sign returns 1 for positive, -1 for negative, 0 for zero.
func (f Float16) Sign() int {
	if f.IsZero() {
		return 0
	}
	if f.Signbit() {
		return -1
	}
	return 1
}

// Signbit reports whether f's sign bit is set.
func (f Float16) Signbit() bool { return (f & signMask) != 0 }

// Abs clears the sign bit.
func (f Float16) Abs() Float16 { return f & 0x7FFF }

// Neg flips the sign bit.
func (f Float16) Neg() Float16 { return f ^ signMask }

// CopySign returns f's magnitude combined with sign's sign bit.
func (f Float16) CopySign(sign Float16) Float16 {
	return (f & 0x7FFF) | (sign & signMask)
}

// Bits returns the underlying uint16 representation.
func (f Float16) Bits() uint16 { return uint16(f) }

// FromBits constructs a Float16 directly from its bit pattern.
func FromBits(bits uint16) Float16 { return Float16(bits) }

// Class reports the IEEE-754 classification of f.
func (f Float16) Class() format.Class {
	return format.Binary16.ClassifyBits(f.big())
}

// String renders f as "NaN" or "-NaN", "+Inf" or "-Inf", or a decimal
// approximation with up to six significant digits.
func (f Float16) String() string {
	if f.IsNaN() {
		if f.Signbit() {
			return "-NaN"
		}
		return "NaN"
	}
	if f.IsInf(0) {
		if f.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	}
	return fmt.Sprintf("%.6g", f.ToFloat64())
}

// GoString renders f as a Go expression reconstructing it.
func (f Float16) GoString() string {
	return fmt.Sprintf("float16.FromBits(0x%04x)", uint16(f))
}

// FromFloat64 rounds a host float64 to the nearest Float16, ties to even.
func FromFloat64(v float64) Float16 {
	return fromBig(format.Binary16.FromFloat64(v))
}

// ToFloat64 widens f to a host float64, exactly.
func (f Float16) ToFloat64() float64 {
	return format.Binary16.ToFloat64(f.big())
}

// Add computes f+g per IEEE-754 binary16 semantics (spec §4.C),
// rounding to nearest with ties to even.
func (f Float16) Add(g Float16) Float16 {
	return fromBig(softfloat.Add(format.Binary16, f.big(), g.big()))
}

// Sub computes f-g per IEEE-754 binary16 semantics.
func (f Float16) Sub(g Float16) Float16 {
	return fromBig(softfloat.Sub(format.Binary16, f.big(), g.big()))
}
