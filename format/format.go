// Package format describes the IEEE-754 binary bitfield layout generic
// over exponent width and significand width, and provides the codec
// operations (extract, pack, classify, print) the rest of this module
// is built from.
package format

import (
	"fmt"
	"math/big"

	"github.com/zerfoo/softfloat/bitfield"
)

// Descriptor names one IEEE-754 binary encoding: E exponent bits, S
// significand bits including the implicit hidden bit (so the stored
// mantissa field is S-1 bits wide).
type Descriptor struct {
	E    uint
	S    uint
	Name string
}

// Width returns the total bit width E+S of the encoded form.
func (d Descriptor) Width() uint {
	return d.E + d.S
}

// Bias returns 2^(E-1) - 1, the exponent bias.
func (d Descriptor) Bias() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), d.E-1), big.NewInt(1))
}

// MaxBiasedExp returns 2^E - 1, the biased exponent reserved for
// infinities and NaNs.
func (d Descriptor) MaxBiasedExp() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), d.E), big.NewInt(1))
}

// Triple is a decomposed (sign, exponent, mantissa) field set. Sign is
// 0 or 1, Exp is in [0, 2^E-1], Man is in [0, 2^(S-1)-1].
type Triple struct {
	Sign *big.Int
	Exp  *big.Int
	Man  *big.Int
}

// Extract decomposes a Width()-bit pattern into its sign, biased
// exponent, and stored mantissa fields.
func (d Descriptor) Extract(bits *big.Int) Triple {
	w := d.Width()
	return Triple{
		Sign: bitfield.Bit(bits, w-1),
		Exp:  bitfield.Range(bits, w-2, d.S-1),
		Man:  bitfield.Range(bits, d.S-2, 0),
	}
}

// Pack concatenates sign, exp, and man into a Width()-bit pattern. It
// panics if any field exceeds its declared width — this is a
// programming fault, the same way an inverted bitfield.Range is.
func (d Descriptor) Pack(sign, exp, man *big.Int) *big.Int {
	one := big.NewInt(1)
	if sign.Cmp(new(big.Int).Lsh(one, 1)) >= 0 {
		panic(fmt.Sprintf("format: sign %v does not fit in 1 bit", sign))
	}
	if exp.Cmp(new(big.Int).Lsh(one, d.E)) >= 0 {
		panic(fmt.Sprintf("format: exponent %v does not fit in %d bits", exp, d.E))
	}
	if man.Cmp(new(big.Int).Lsh(one, d.S-1)) >= 0 {
		panic(fmt.Sprintf("format: mantissa %v does not fit in %d bits", man, d.S-1))
	}
	return bitfield.Concat(
		bitfield.Field{Value: sign, Width: 1},
		bitfield.Field{Value: exp, Width: d.E},
		bitfield.Field{Value: man, Width: d.S - 1},
	)
}

// Class is the IEEE-754 classification of a decomposed value.
type Class int

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "Zero"
	case Subnormal:
		return "Subnormal"
	case Normal:
		return "Normal"
	case Infinite:
		return "Infinite"
	case NaN:
		return "NaN"
	default:
		return "Unknown"
	}
}

// Classify implements the classification table of spec §3 directly on
// a decomposed Triple.
func (d Descriptor) Classify(t Triple) Class {
	maxExp := d.MaxBiasedExp()
	expIsZero := t.Exp.Sign() == 0
	manIsZero := t.Man.Sign() == 0
	expIsMax := t.Exp.Cmp(maxExp) == 0

	switch {
	case expIsZero && manIsZero:
		return Zero
	case expIsZero && !manIsZero:
		return Subnormal
	case expIsMax && manIsZero:
		return Infinite
	case expIsMax && !manIsZero:
		return NaN
	default:
		return Normal
	}
}

// ClassifyBits decomposes bits and classifies it in one step.
func (d Descriptor) ClassifyBits(bits *big.Int) Class {
	return d.Classify(d.Extract(bits))
}

// Print renders the standard decomposition of bits as
// "sign=…,exp=…,man=<binary, zero-padded to S-1 bits>".
func (d Descriptor) Print(bits *big.Int) string {
	t := d.Extract(bits)
	return fmt.Sprintf("sign=%v,exp=%v,man=%0*b", t.Sign, t.Exp, int(d.S-1), t.Man)
}
