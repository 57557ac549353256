package format

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/zerfoo/softfloat/bitfield"
)

// FromFloat64 narrows a host float64 value to this descriptor's bit
// pattern, rounding to nearest with ties to even (the only rounding
// mode this module supports — spec §1 Non-goals). This is the one
// place decimal/hardware-float input enters the generic codec; the
// actual decimal parsing is delegated to strconv (spec §1: "delegated
// to the host language's standard float parser").
func (d Descriptor) FromFloat64(v float64) *big.Int {
	if v == 0 {
		return d.Pack(signOf(v), big.NewInt(0), big.NewInt(0))
	}

	bits64 := math.Float64bits(v)
	sign := (bits64 >> 63) & 1
	exp64 := int64((bits64 >> 52) & 0x7FF)
	man64 := bits64 & ((1 << 52) - 1)

	if exp64 == 0x7FF {
		if man64 == 0 {
			return d.Pack(big.NewInt(int64(sign)), d.MaxBiasedExp(), big.NewInt(0))
		}
		return d.Pack(big.NewInt(int64(sign)), d.MaxBiasedExp(), d.truncateNaNPayload(man64))
	}

	var sig53 uint64
	var trueExp int64
	if exp64 == 0 {
		sig53 = man64
		trueExp = 1 - 1023
		for sig53&(1<<52) == 0 {
			sig53 <<= 1
			trueExp--
		}
	} else {
		sig53 = man64 | (1 << 52)
		trueExp = exp64 - 1023
	}

	return d.roundAndPack(sign, trueExp, sig53)
}

// truncateNaNPayload keeps the top bits of a float64 NaN payload that
// fit in this descriptor's (S-1)-bit mantissa field, forcing it
// nonzero so the result stays a NaN rather than becoming infinity.
func (d Descriptor) truncateNaNPayload(man64 uint64) *big.Int {
	width := d.S - 1
	var payload uint64
	if width >= 52 {
		payload = man64 << (width - 52)
	} else {
		payload = man64 >> (52 - width)
	}
	if payload == 0 {
		payload = 1
	}
	return new(big.Int).SetUint64(payload)
}

// roundAndPack takes a 53-bit normalized significand (explicit leading
// 1 at bit 52) and the true (unbiased) exponent of that significand,
// and rounds/normalizes/packs it into this descriptor with the same
// guard/round/sticky helpers the softfloat kernel uses, handling
// overflow to infinity and underflow to subnormal/zero.
func (d Descriptor) roundAndPack(sign uint64, trueExp int64, sig53 uint64) *big.Int {
	biasedExp := trueExp + d.Bias().Int64()
	shift := int64(53 - d.S)
	if biasedExp <= 0 {
		shift += 1 - biasedExp
		biasedExp = 0
	}

	sig := new(big.Int).SetUint64(sig53)
	var rounded *big.Int
	switch {
	case shift >= 3:
		rounded = bitfield.RoundGRS(bitfield.RshiftSticky(sig, uint(shift-3)))
	case shift >= 0:
		rounded = bitfield.RoundGRS(new(big.Int).Lsh(sig, uint(3-shift)))
	default:
		rounded = new(big.Int).Lsh(sig, uint(-shift))
	}

	maxExp := d.MaxBiasedExp()
	if biasedExp == 0 {
		if rounded.BitLen() > int(d.S-1) {
			biasedExp = 1 // carried out of subnormal range into the smallest normal.
		}
	} else if rounded.BitLen() > int(d.S) {
		rounded.Rsh(rounded, 1)
		biasedExp++
	}

	if big.NewInt(biasedExp).Cmp(maxExp) >= 0 {
		return d.Pack(big.NewInt(int64(sign)), maxExp, big.NewInt(0))
	}

	man := new(big.Int).And(rounded, bitfield.Mask(d.S-1))
	return d.Pack(big.NewInt(int64(sign)), big.NewInt(biasedExp), man)
}

// ToFloat64 widens this descriptor's bit pattern to a host float64.
// Every binary16/32/64 value is exactly representable in float64, so
// this conversion never rounds.
func (d Descriptor) ToFloat64(pattern *big.Int) float64 {
	t := d.Extract(pattern)
	sign := t.Sign.Uint64()

	switch d.Classify(t) {
	case Zero:
		if sign == 1 {
			return math.Copysign(0, -1)
		}
		return 0
	case Infinite:
		if sign == 1 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case NaN:
		man64 := widen(t.Man.Uint64(), d.S-1, 52)
		if man64 == 0 {
			man64 = 1
		}
		return math.Float64frombits(sign<<63 | 0x7FF<<52 | man64)
	default:
		trueExp, sig52 := d.normalize53(t)
		exp64 := trueExp + 1023
		if exp64 <= 0 {
			// Below float64's normal range: scale the 53-bit significand
			// into a float64 subnormal, which holds it exactly.
			v := math.Ldexp(float64(sig52|1<<52), int(trueExp)-52)
			if sign == 1 {
				v = -v
			}
			return v
		}
		return math.Float64frombits(sign<<63 | uint64(exp64)<<52 | sig52)
	}
}

// normalize53 returns the true (unbiased) exponent and the 52-bit
// stored float64 significand (hidden bit implicit) for a normal or
// subnormal decomposed value.
func (d Descriptor) normalize53(t Triple) (trueExp int64, sig52 uint64) {
	bias := d.Bias().Int64()
	man := t.Man.Uint64()
	if t.Exp.Sign() == 0 {
		// Subnormal: normalize until the field's top bit is set, the
		// same shift-to-hidden technique the softfloat kernel uses to
		// bring a subnormal operand into normal-shaped alignment.
		width := d.S - 1
		lz := leadingZeros(man, width)
		man = (man << (lz + 1)) & bitfield.Mask(width).Uint64()
		trueExp = (1 - bias) - int64(lz) - 1
	} else {
		trueExp = t.Exp.Int64() - bias
	}
	sig52 = widen(man, d.S-1, 52)
	return trueExp, sig52
}

// widen left-aligns an n-bit field into an m-bit field (m >= n).
func widen(x uint64, n, m uint) uint64 {
	if m <= n {
		return x >> (n - m)
	}
	return x << (m - n)
}

// leadingZeros counts leading zero bits of x within a `width`-bit
// field (x must be nonzero and fit in width bits).
func leadingZeros(x uint64, width uint) uint {
	return uint(bits.LeadingZeros64(x)) - (64 - width)
}

func signOf(v float64) *big.Int {
	if math.Signbit(v) {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}
