package bitfield

import "math/big"

// RshiftSticky right-shifts m by k bits, OR-ing a sticky 1 into the
// result's LSB if any of the k bits shifted away was set. This is the
// only correct way to realize a sticky shift (spec §4.C.3,
// §9 "Guard/Round/Sticky"): the sticky bit is the OR-reduction of
// every bit ever shifted out, not merely the last one.
func RshiftSticky(m *big.Int, k uint) *big.Int {
	if k == 0 {
		return new(big.Int).Set(m)
	}
	shiftedOut := new(big.Int).And(m, Mask(k))
	result := new(big.Int).Rsh(m, k)
	if shiftedOut.Sign() != 0 {
		result.Or(result, big.NewInt(1))
	}
	return result
}

// RoundGRS rounds off the low 3 bits of x (guard, round, sticky) using
// round-to-nearest-ties-to-even, per spec §4.C.1/§4.C.3:
//
//	low3 < 0b100  -> round down
//	low3 > 0b100  -> round up
//	low3 = 0b100  -> round up iff the LSB of x>>3 is 1 (tie to even)
func RoundGRS(x *big.Int) *big.Int {
	low3 := new(big.Int).And(x, big.NewInt(0b111)).Int64()
	result := new(big.Int).Rsh(x, 3)
	switch {
	case low3 < 0b100:
		// round down: truncate, nothing to add.
	case low3 > 0b100:
		result.Add(result, big.NewInt(1))
	default:
		if result.Bit(0) == 1 {
			result.Add(result, big.NewInt(1))
		}
	}
	return result
}
