// Package softfloat implements IEEE-754 binary addition and subtraction
// entirely in software, generic over any format.Descriptor, by working
// on the decomposed (sign, exponent, mantissa) triple rather than on a
// machine float. Rounding is always to nearest, ties to even.
package softfloat

import (
	"math/big"

	"github.com/zerfoo/softfloat/bitfield"
	"github.com/zerfoo/softfloat/format"
)

// Add computes a + b as bit patterns of d, dispatching to effective
// addition or subtraction based on the XOR of the operands' stored
// sign bits — not their normalized sign, per the IEEE convention that
// -0 and the sign of an infinity/NaN still participate in dispatch.
func Add(d format.Descriptor, a, b *big.Int) *big.Int {
	ta, tb := d.Extract(a), d.Extract(b)
	if signsDiffer(ta.Sign, tb.Sign) {
		return d.Pack(effectiveSub(d, ta.Sign, ta.Exp, ta.Man, tb.Sign, tb.Exp, tb.Man))
	}
	return d.Pack(effectiveAdd(d, ta.Sign, ta.Exp, ta.Man, tb.Sign, tb.Exp, tb.Man))
}

// Sub computes a - b as bit patterns of d.
func Sub(d format.Descriptor, a, b *big.Int) *big.Int {
	ta, tb := d.Extract(a), d.Extract(b)
	if signsDiffer(ta.Sign, tb.Sign) {
		return d.Pack(effectiveAdd(d, ta.Sign, ta.Exp, ta.Man, tb.Sign, tb.Exp, tb.Man))
	}
	return d.Pack(effectiveSub(d, ta.Sign, ta.Exp, ta.Man, tb.Sign, tb.Exp, tb.Man))
}

// signsDiffer reports whether the operands' stored sign bits differ,
// via XOR — the dispatch rule spec §9 resolves effective-add/-sub by,
// using the raw stored sign rather than a normalized one.
func signsDiffer(signA, signB *big.Int) bool {
	return new(big.Int).Xor(signA, signB).Bit(0) == 1
}

func one() *big.Int  { return big.NewInt(1) }
func zero() *big.Int { return big.NewInt(0) }

// shiftToFrame returns the left shift that moves x's highest set bit
// to position frameTopBit — the bignum equivalent of the "leading
// zero count relative to a fixed-width frame" computation a
// fixed-width softfloat implementation does with a hardware
// clz instruction.
func shiftToFrame(x *big.Int, frameTopBit uint) uint {
	return frameTopBit - uint(x.BitLen()-1)
}

// effectiveAdd adds the magnitudes of two operands whose effective
// signs agree (spec §4.C.1): Add calls it when the stored signs are
// equal, Sub when they differ. The result carries a's sign.
func effectiveAdd(d format.Descriptor, signA, expA, manA, signB, expB, manB *big.Int) (sign, exp, man *big.Int) {
	maxExp := d.MaxBiasedExp()
	normBit := new(big.Int).Lsh(one(), d.S-1)

	if expA.Cmp(expB) == 0 {
		switch {
		case expA.Sign() == 0:
			// Both subnormal or zero: mantissas add directly, no
			// hidden bit, no rounding. A sum that reaches the
			// hidden-bit position overflows the subnormal field and
			// promotes to the smallest normal.
			sum := new(big.Int).Add(manA, manB)
			if sum.Cmp(normBit) >= 0 {
				return signA, one(), new(big.Int).Sub(sum, normBit)
			}
			return signA, zero(), sum

		case expA.Cmp(maxExp) == 0:
			// Both infinite or NaN: a NaN operand propagates, with a
			// preferring its own payload.
			if manA.Sign() != 0 {
				return signA, maxExp, manA
			}
			if manB.Sign() != 0 {
				return signB, maxExp, manB
			}
			return signA, expA, manA

		default:
			// Both normal, same exponent: add with hidden bits
			// restored, then renormalize by one bit.
			a := new(big.Int).Add(manA, normBit)
			b := new(big.Int).Add(manB, normBit)
			sum := new(big.Int).Add(a, b)
			exp := new(big.Int).Add(expA, one())

			if new(big.Int).And(sum, big.NewInt(0b11)).Cmp(big.NewInt(0b11)) == 0 {
				sum.Add(sum, big.NewInt(2))
			}
			sum.Rsh(sum, 1)
			sum.Sub(sum, normBit)
			if exp.Cmp(maxExp) == 0 {
				// Past the largest finite value: round to infinity.
				return signA, maxExp, zero()
			}
			return signA, exp, sum
		}
	}

	// Exponents differ.
	if expA.Cmp(maxExp) == 0 {
		return signA, expA, manA
	}
	if expB.Cmp(maxExp) == 0 {
		if manB.Sign() == 0 {
			// Infinite b: the result is infinite with a's sign, which is
			// b's effective sign under both Add and Sub.
			return signA, expB, manB
		}
		return signB, expB, manB
	}

	normA := new(big.Int).Lsh(manA, 3)
	normB := new(big.Int).Lsh(manB, 3)
	normBit3 := new(big.Int).Lsh(normBit, 3)

	var expC *big.Int
	if expA.Cmp(expB) > 0 {
		diff := new(big.Int).Sub(expA, expB)
		if expB.Sign() != 0 {
			normB.Add(normB, normBit3)
		} else {
			diff.Sub(diff, one()) // a subnormal is scaled like exponent 1
		}
		normB = bitfield.RshiftSticky(normB, uint(diff.Uint64()))
		expC = new(big.Int).Set(expA)
	} else {
		diff := new(big.Int).Sub(expB, expA)
		if expA.Sign() != 0 {
			normA.Add(normA, normBit3)
		} else {
			diff.Sub(diff, one())
		}
		normA = bitfield.RshiftSticky(normA, uint(diff.Uint64()))
		expC = new(big.Int).Set(expB)
	}

	sum := new(big.Int).Add(normA, normB)
	sum.Add(sum, normBit3)

	if sum.Cmp(new(big.Int).Lsh(normBit, 4)) >= 0 {
		expC.Add(expC, one())
		sum = bitfield.RshiftSticky(sum, 1)
	}

	sum = bitfield.RoundGRS(sum)
	if sum.BitLen() > int(d.S) {
		// Rounding carried out of the significand.
		expC.Add(expC, one())
		sum.Rsh(sum, 1)
	}
	if expC.Cmp(maxExp) >= 0 {
		return signA, maxExp, zero()
	}
	sum.Sub(sum, normBit)
	return signA, expC, sum
}

// effectiveSub computes the magnitude difference of two operands whose
// effective signs differ (spec §4.C.2): Add calls it when the stored
// signs differ, Sub when they are equal.
func effectiveSub(d format.Descriptor, signA, expA, manA, signB, expB, manB *big.Int) (sign, exp, man *big.Int) {
	maxExp := d.MaxBiasedExp()
	normBit := new(big.Int).Lsh(one(), d.S-1)

	if expA.Cmp(expB) == 0 {
		switch {
		case expA.Sign() == 0:
			switch manA.Cmp(manB) {
			case 1:
				return signA, zero(), new(big.Int).Sub(manA, manB)
			case -1:
				return new(big.Int).Sub(one(), signA), zero(), new(big.Int).Sub(manB, manA)
			default:
				return zero(), zero(), zero()
			}

		case expA.Cmp(maxExp) == 0:
			if manA.Sign() != 0 {
				return signA, expA, manA
			}
			if manB.Sign() != 0 {
				return signB, expB, manB
			}
			// Inf - Inf: canonical (non-signaling) NaN.
			return zero(), maxExp, new(big.Int).Lsh(one(), d.S-2)

		default:
			switch manA.Cmp(manB) {
			case -1:
				diff := new(big.Int).Sub(manB, manA)
				shift := shiftToFrame(diff, d.S-1)
				if int64(shift) >= expA.Int64() { // subnormal result, exact
					return new(big.Int).Sub(one(), signA), zero(), diff.Lsh(diff, uint(expA.Int64()-1))
				}
				diff.Lsh(diff, shift)
				diff.Sub(diff, normBit)
				return new(big.Int).Sub(one(), signA), new(big.Int).Sub(expA, big.NewInt(int64(shift))), diff
			case 1:
				diff := new(big.Int).Sub(manA, manB)
				shift := shiftToFrame(diff, d.S-1)
				if int64(shift) >= expA.Int64() { // subnormal result, exact
					return signA, zero(), diff.Lsh(diff, uint(expA.Int64()-1))
				}
				diff.Lsh(diff, shift)
				diff.Sub(diff, normBit)
				return signA, new(big.Int).Sub(expA, big.NewInt(int64(shift))), diff
			default:
				return zero(), zero(), zero()
			}
		}
	}

	// Exponents differ.
	if expA.Cmp(maxExp) == 0 {
		return signA, expA, manA
	}
	if expB.Cmp(maxExp) == 0 {
		if manB.Sign() == 0 {
			// Infinite b: the result is the infinity of sign not-a.
			return new(big.Int).Sub(one(), signA), expB, manB
		}
		return signB, expB, manB
	}

	normA := withHiddenBit(expA, manA, normBit)
	normA.Lsh(normA, 3)
	normB := withHiddenBit(expB, manB, normBit)
	normB.Lsh(normB, 3)

	if expA.Cmp(expB) > 0 {
		diff := new(big.Int).Sub(expA, expB)
		if expB.Sign() == 0 {
			diff.Sub(diff, one()) // a subnormal is scaled like exponent 1
		}
		normB = bitfield.RshiftSticky(normB, uint(diff.Uint64()))
		man := new(big.Int).Sub(normA, normB)
		shift := shiftToFrame(man, d.S+2)
		if int64(shift) >= expA.Int64() {
			shift = uint(expA.Int64() - 1) // stop at the subnormal range
		}
		man.Lsh(man, shift)
		exp := new(big.Int).Sub(expA, big.NewInt(int64(shift)))
		man = bitfield.RoundGRS(man)
		if man.BitLen() > int(d.S) {
			// Rounding carried out of the significand.
			exp.Add(exp, one())
			man.Rsh(man, 1)
		}
		if man.Cmp(normBit) < 0 {
			return signA, zero(), man // subnormal result
		}
		man.Sub(man, normBit)
		return signA, exp, man
	}

	diff := new(big.Int).Sub(expB, expA)
	if expA.Sign() == 0 {
		diff.Sub(diff, one())
	}
	normA = bitfield.RshiftSticky(normA, uint(diff.Uint64()))
	man = new(big.Int).Sub(normB, normA)
	shift := shiftToFrame(man, d.S+2)
	if int64(shift) >= expB.Int64() {
		shift = uint(expB.Int64() - 1)
	}
	man.Lsh(man, shift)
	exp = new(big.Int).Sub(expB, big.NewInt(int64(shift)))
	man = bitfield.RoundGRS(man)
	if man.BitLen() > int(d.S) {
		exp.Add(exp, one())
		man.Rsh(man, 1)
	}
	if man.Cmp(normBit) < 0 {
		return new(big.Int).Sub(one(), signA), zero(), man
	}
	man.Sub(man, normBit)
	return new(big.Int).Sub(one(), signA), exp, man
}

// withHiddenBit restores the implicit leading 1 for a normal operand;
// a subnormal or zero operand has none.
func withHiddenBit(exp, man, normBit *big.Int) *big.Int {
	if exp.Sign() == 0 {
		return new(big.Int).Set(man)
	}
	return new(big.Int).Add(man, normBit)
}
