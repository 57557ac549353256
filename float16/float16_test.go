package float16

import (
	"math"
	"testing"

	oracle "github.com/x448/float16"
)

func TestFromFloat64ToFloat64(t *testing.T) {
	values := []float64{0, 1, -1, 1.5, 65504, -65504, 0.00006103515625}
	for _, v := range values {
		f := FromFloat64(v)
		if got := f.ToFloat64(); got != v {
			t.Errorf("FromFloat64(%v).ToFloat64() = %v, want %v", v, got, v)
		}
	}
}

func TestFromFloat64MatchesOracle(t *testing.T) {
	values := []float64{0, 1, -1, 1.5, 3.14159, 100, -100, 0.1, 65504, 70000, 1e-10}
	for _, v := range values {
		got := FromFloat64(v)
		want := oracle.Fromfloat32(float32(v))
		if got.Bits() != uint16(want) {
			t.Errorf("FromFloat64(%v) = %#04x, oracle = %#04x", v, got.Bits(), uint16(want))
		}
	}
}

func TestAddMatchesHostArithmetic(t *testing.T) {
	pairs := [][2]float64{{1, 1.5}, {2, -2}, {0.5, 0.25}, {100, 200}}
	for _, p := range pairs {
		a, b := FromFloat64(p[0]), FromFloat64(p[1])
		got := a.Add(b)
		want := FromFloat64(p[0] + p[1])
		if got.Bits() != want.Bits() {
			t.Errorf("Add(%v,%v) = %#04x, want %#04x", p[0], p[1], got.Bits(), want.Bits())
		}
	}
}

func TestPredicates(t *testing.T) {
	if !PositiveInfinity.IsInf(1) {
		t.Error("PositiveInfinity.IsInf(1) = false")
	}
	if !NegativeInfinity.IsInf(-1) {
		t.Error("NegativeInfinity.IsInf(-1) = false")
	}
	if !PositiveZero.IsZero() || !NegativeZero.IsZero() {
		t.Error("zero values should be IsZero")
	}
	if PositiveZero.Sign() != 0 {
		t.Error("PositiveZero.Sign() != 0")
	}
	nan := FromFloat64(math.NaN())
	if !nan.IsNaN() {
		t.Error("NaN value not classified as NaN")
	}
}

func TestSignAbsNegCopySign(t *testing.T) {
	pos := FromFloat64(1.5)
	neg := pos.Neg()
	if !neg.Signbit() {
		t.Error("Neg() did not set sign bit")
	}
	if neg.Abs() != pos {
		t.Error("Abs() did not clear sign bit")
	}
	if pos.CopySign(neg) != neg {
		t.Error("CopySign did not adopt source sign")
	}
}

func TestStringSpecialValues(t *testing.T) {
	if got := PositiveInfinity.String(); got != "+Inf" {
		t.Errorf("PositiveInfinity.String() = %q", got)
	}
	if got := NegativeInfinity.String(); got != "-Inf" {
		t.Errorf("NegativeInfinity.String() = %q", got)
	}
	if got := FromFloat64(math.NaN()).String(); got != "NaN" && got != "-NaN" {
		t.Errorf("NaN.String() = %q", got)
	}
}
