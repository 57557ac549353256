// Package bitfield provides the arbitrary-precision bit primitives the
// rest of this module builds on: extracting a single bit, extracting a
// contiguous range of bits, building the masks both need, concatenating
// fields, and the sticky shift and guard/round/sticky rounding used by
// the arithmetic.
//
// Every value is a *big.Int treated as an unsigned bit vector. Callers
// own width and sign interpretation; apart from RoundGRS, which reads
// the low three bits as guard, round and sticky, nothing here assigns
// meaning to the bits it handles.
package bitfield

import "math/big"

// Bit returns the single bit of m at position i (0 or 1), as a *big.Int.
func Bit(m *big.Int, i uint) *big.Int {
	return Range(m, i, i)
}

// Range returns the bits [hi:lo] of m, right-aligned in the result.
// It panics if hi < lo — an inverted range is a programming fault,
// never a value to propagate.
func Range(m *big.Int, hi, lo uint) *big.Int {
	if hi < lo {
		panic("bitfield: Range called with hi < lo")
	}
	shifted := new(big.Int).Rsh(m, lo)
	return shifted.And(shifted, Mask(hi-lo+1))
}

// Mask returns a *big.Int with the low `width` bits set and all others
// clear: (1<<width)-1.
func Mask(width uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), width), big.NewInt(1))
}

// Concat packs a sequence of (value, width) fields MSB-first into a
// single *big.Int: the first field occupies the highest bits. Each
// value must already fit in its declared width — Concat does not mask.
type Field struct {
	Value *big.Int
	Width uint
}

// Concat lays out fields MSB-first, same convention the codecs in
// package format and package recode use to assemble their output.
func Concat(fields ...Field) *big.Int {
	result := new(big.Int)
	for _, f := range fields {
		result.Lsh(result, f.Width)
		result.Or(result, f.Value)
	}
	return result
}
