package format

import (
	"math"
	"math/big"
	"testing"
)

func TestExtractPackRoundTrip(t *testing.T) {
	for _, d := range All {
		t.Run(d.Name, func(t *testing.T) {
			patterns := []*big.Int{
				big.NewInt(0),
				new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), d.Width()), big.NewInt(1)),
				d.Pack(big.NewInt(1), big.NewInt(0), big.NewInt(0)),
				d.Pack(big.NewInt(0), d.MaxBiasedExp(), big.NewInt(1)),
			}
			for _, bits := range patterns {
				tr := d.Extract(bits)
				got := d.Pack(tr.Sign, tr.Exp, tr.Man)
				if got.Cmp(bits) != 0 {
					t.Errorf("Pack(Extract(%v)) = %v, want %v", bits, got, bits)
				}
			}
		})
	}
}

func TestPackExtractRoundTrip(t *testing.T) {
	for _, d := range All {
		t.Run(d.Name, func(t *testing.T) {
			sign := big.NewInt(1)
			exp := big.NewInt(3)
			man := big.NewInt(5)
			bits := d.Pack(sign, exp, man)
			tr := d.Extract(bits)
			if tr.Sign.Cmp(sign) != 0 || tr.Exp.Cmp(exp) != 0 || tr.Man.Cmp(man) != 0 {
				t.Errorf("Extract(Pack(%v,%v,%v)) = (%v,%v,%v)", sign, exp, man, tr.Sign, tr.Exp, tr.Man)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	d := Binary32
	tests := []struct {
		name string
		bits *big.Int
		want Class
	}{
		{"+zero", d.Pack(big.NewInt(0), big.NewInt(0), big.NewInt(0)), Zero},
		{"-zero", d.Pack(big.NewInt(1), big.NewInt(0), big.NewInt(0)), Zero},
		{"subnormal", d.Pack(big.NewInt(0), big.NewInt(0), big.NewInt(1)), Subnormal},
		{"normal", d.Pack(big.NewInt(0), big.NewInt(1), big.NewInt(0)), Normal},
		{"+inf", d.Pack(big.NewInt(0), d.MaxBiasedExp(), big.NewInt(0)), Infinite},
		{"nan", d.Pack(big.NewInt(0), d.MaxBiasedExp(), big.NewInt(1)), NaN},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := d.ClassifyBits(test.bits); got != test.want {
				t.Errorf("Classify(%s) = %v, want %v", test.name, got, test.want)
			}
		})
	}
}

func TestPackPanicsOnOversizeField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pack with oversize mantissa should have panicked")
		}
	}()
	Binary16.Pack(big.NewInt(0), big.NewInt(0), big.NewInt(1<<20))
}

func TestFromFloat64ToFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 2, 3.5, 65504, 1e-5, -1e-5, 100000}
	for _, d := range All {
		for _, v := range values {
			bits := d.FromFloat64(v)
			got := d.ToFloat64(bits)
			if d.Name == "f16" && math.Abs(v) > 65504 {
				continue
			}
			if math.IsInf(got, 0) {
				continue
			}
			if math.Abs(got-v) > math.Abs(v)*1e-2+1e-10 {
				t.Errorf("%s: FromFloat64(%v)->ToFloat64 = %v", d.Name, v, got)
			}
		}
	}
}

func TestFromFloat64Zero(t *testing.T) {
	for _, d := range All {
		pos := d.FromFloat64(0)
		neg := d.FromFloat64(math.Copysign(0, -1))
		if d.ClassifyBits(pos) != Zero || d.Extract(pos).Sign.Sign() != 0 {
			t.Errorf("%s: +0 not classified as +zero", d.Name)
		}
		if d.ClassifyBits(neg) != Zero || d.Extract(neg).Sign.Sign() == 0 {
			t.Errorf("%s: -0 not classified as -zero", d.Name)
		}
	}
}

func TestFromFloat64Infinity(t *testing.T) {
	for _, d := range All {
		bits := d.FromFloat64(math.Inf(1))
		if d.ClassifyBits(bits) != Infinite {
			t.Errorf("%s: +Inf not classified as infinite", d.Name)
		}
		bits = d.FromFloat64(math.Inf(-1))
		tr := d.Extract(bits)
		if d.Classify(tr) != Infinite || tr.Sign.Sign() == 0 {
			t.Errorf("%s: -Inf not classified as negative infinite", d.Name)
		}
	}
}

func TestFromFloat64NaN(t *testing.T) {
	for _, d := range All {
		bits := d.FromFloat64(math.NaN())
		if d.ClassifyBits(bits) != NaN {
			t.Errorf("%s: NaN not classified as NaN", d.Name)
		}
	}
}

func TestFromFloat64Overflow(t *testing.T) {
	bits := Binary16.FromFloat64(1e10)
	if Binary16.ClassifyBits(bits) != Infinite {
		t.Errorf("binary16: 1e10 should overflow to infinity, got %s", Binary16.Print(bits))
	}
}

func TestFromFloat64Subnormal(t *testing.T) {
	// Smallest binary16 subnormal is 2^-24.
	bits := Binary16.FromFloat64(math.Ldexp(1, -24))
	if Binary16.ClassifyBits(bits) != Subnormal {
		t.Errorf("binary16: 2^-24 should be subnormal, got %s", Binary16.Print(bits))
	}
}

func TestToFloat64Float64Identity(t *testing.T) {
	values := []float64{0, 1, -1, math.Pi, 1e300, 5e-300}
	for _, v := range values {
		bits := Binary64.FromFloat64(v)
		got := Binary64.ToFloat64(bits)
		if got != v {
			t.Errorf("Binary64 round trip: FromFloat64(%v)->ToFloat64 = %v", v, got)
		}
	}
}
