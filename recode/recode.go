// Package recode translates a standard IEEE-754 binary pattern into
// the two hardware-oriented encodings used by FPU implementations
// that don't want to special-case subnormals and specials on every
// operation: the "recoded"/hardfloat form (one extra exponent bit,
// zero/subnormal/normal/Inf/NaN distinguished by the top 3 exponent
// bits) and the "FloPoCo" form (two explicit classification bits, no
// subnormal representation at all).
package recode

import (
	"fmt"
	"math/big"

	"github.com/zerfoo/softfloat/bitfield"
	"github.com/zerfoo/softfloat/format"
)

// ToHardfloat converts bits (in format d) to the recFN/hardfloat
// encoding: width E+S+1, sign(1) | exp(E+1) | sig(S-1).
//
// http://www.jhauser.us/arithmetic/HardFloat-1/doc/HardFloat-Verilog.html
func ToHardfloat(d format.Descriptor, bits *big.Int) *big.Int {
	t := d.Extract(bits)
	k := d.E - 1
	pow2k := new(big.Int).Lsh(big.NewInt(1), k)

	var exp, sig *big.Int
	switch d.Classify(t) {
	case format.Zero:
		exp, sig = big.NewInt(0), big.NewInt(0)
	case format.Subnormal:
		n := d.S - 1 - uint(t.Man.BitLen())
		exp = new(big.Int).Add(pow2k, big.NewInt(2))
		exp.Sub(exp, big.NewInt(int64(n)))
		sig = new(big.Int).Lsh(t.Man, n)
	case format.Infinite:
		// Tag occupies the top three bits of the (E+1)-bit recoded
		// exponent field: 0b110.
		exp = new(big.Int).Lsh(big.NewInt(0b110), d.E-2)
		sig = big.NewInt(0)
	case format.NaN:
		exp = new(big.Int).Lsh(big.NewInt(0b111), d.E-2)
		sig = big.NewInt(0)
	default: // Normal
		exp = new(big.Int).Add(t.Exp, pow2k)
		exp.Add(exp, big.NewInt(1))
		sig = t.Man
	}

	return bitfield.Concat(
		bitfield.Field{Value: t.Sign, Width: 1},
		bitfield.Field{Value: exp, Width: d.E + 1},
		bitfield.Field{Value: sig, Width: d.S - 1},
	)
}

// ToFlopoco converts bits (in format d) to the FloPoCo encoding: width
// E+S+2, exn(2) | sign(1) | exp(E) | sig(S-1). exn is 0=zero, 1=normal,
// 2=infinity, 3=NaN.
//
// FloPoCo has no subnormal representation at all: calling this on a
// subnormal pattern is a programming fault, not a value to propagate,
// since there's no encoding it could produce.
func ToFlopoco(d format.Descriptor, bits *big.Int) *big.Int {
	t := d.Extract(bits)

	var exn, exp, sig *big.Int
	switch d.Classify(t) {
	case format.Zero:
		exn, exp, sig = big.NewInt(0), big.NewInt(0), big.NewInt(0)
	case format.Subnormal:
		panic("recode: ToFlopoco has no subnormal representation")
	case format.Infinite:
		exn, exp, sig = big.NewInt(2), big.NewInt(0), big.NewInt(0)
	case format.NaN:
		exn, exp, sig = big.NewInt(3), big.NewInt(0), big.NewInt(0)
	default: // Normal
		exn, exp, sig = big.NewInt(1), t.Exp, t.Man
	}

	return bitfield.Concat(
		bitfield.Field{Value: exn, Width: 2},
		bitfield.Field{Value: t.Sign, Width: 1},
		bitfield.Field{Value: exp, Width: d.E},
		bitfield.Field{Value: sig, Width: d.S - 1},
	)
}

// PrintHardfloat renders a hardfloat-encoded pattern as
// "sign=…,exp=…,sig=…".
func PrintHardfloat(d format.Descriptor, recoded *big.Int) string {
	sign := bitfield.Bit(recoded, d.S+d.E)
	exp := bitfield.Range(recoded, d.S+d.E-1, d.S-1)
	sig := bitfield.Range(recoded, d.S-2, 0)
	return fmt.Sprintf("sign=%v,exp=%v,sig=%v", sign, exp, sig)
}

// PrintFlopoco renders a FloPoCo-encoded pattern as
// "exn=…,sign=…,exp=…,sig=…".
func PrintFlopoco(d format.Descriptor, recoded *big.Int) string {
	exn := bitfield.Range(recoded, d.S+d.E+1, d.S+d.E)
	sign := bitfield.Bit(recoded, d.S+d.E-1)
	exp := bitfield.Range(recoded, d.S+d.E-2, d.S-1)
	sig := bitfield.Range(recoded, d.S-2, 0)
	return fmt.Sprintf("exn=%v,sign=%v,exp=%v,sig=%v", exn, sign, exp, sig)
}
