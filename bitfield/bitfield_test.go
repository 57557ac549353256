package bitfield

import (
	"math/big"
	"testing"
)

func TestBit(t *testing.T) {
	m := big.NewInt(0b1010)
	tests := []struct {
		i    uint
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 0},
		{3, 1},
		{4, 0},
	}
	for _, test := range tests {
		if got := Bit(m, test.i); got.Int64() != test.want {
			t.Errorf("Bit(0b1010, %d) = %v, want %d", test.i, got, test.want)
		}
	}
}

func TestRange(t *testing.T) {
	m := big.NewInt(0b1111_0000_1100)
	tests := []struct {
		hi, lo uint
		want   int64
	}{
		{11, 0, 0b1111_0000_1100},
		{11, 8, 0b1111},
		{7, 4, 0b0000},
		{3, 0, 0b1100},
		{1, 1, 0},
		{2, 2, 1},
	}
	for _, test := range tests {
		if got := Range(m, test.hi, test.lo); got.Int64() != test.want {
			t.Errorf("Range(m, %d, %d) = %v, want %d", test.hi, test.lo, got, test.want)
		}
	}
}

func TestRangeInvertedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Range(m, 2, 5) should have panicked")
		}
	}()
	Range(big.NewInt(0), 2, 5)
}

func TestMask(t *testing.T) {
	tests := []struct {
		width uint
		want  int64
	}{
		{0, 0},
		{1, 1},
		{4, 0b1111},
		{8, 0xFF},
	}
	for _, test := range tests {
		if got := Mask(test.width); got.Int64() != test.want {
			t.Errorf("Mask(%d) = %v, want %d", test.width, got, test.want)
		}
	}
}

func TestConcat(t *testing.T) {
	got := Concat(
		Field{big.NewInt(1), 1},
		Field{big.NewInt(0b1010), 4},
		Field{big.NewInt(0b11), 2},
	)
	want := int64(0b1_1010_11)
	if got.Int64() != want {
		t.Errorf("Concat(...) = %v, want %d", got, want)
	}
}
