// Package inspect implements the argument-triage and report-rendering
// logic shared by the floatinspect CLI and the floatinspectd daemon:
// given one command-line-style argument, decide whether to treat it
// as a hex bit pattern, a decimal value (or both), and render its
// binary16/32/64, hardfloat, and FloPoCo encodings.
package inspect

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/zerfoo/softfloat/format"
	"github.com/zerfoo/softfloat/recode"
)

// ParseError reports that an argument could not be parsed: invalid
// digits in a "0x" hex bit pattern, or text that the host language's
// decimal float parser rejects (this package has no decimal parser of
// its own).
type ParseError struct {
	Arg string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("inspect: %q is not a valid float: %v", e.Arg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Report renders the full inspection report for one argument, per the
// triage rule: a "0x"-prefixed argument is a hex bit pattern; a plain
// decimal integer is treated as both a bit pattern and a decimal
// value; anything else is parsed as a decimal float via the host
// parser.
func Report(arg string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", arg)

	switch {
	case strings.HasPrefix(arg, "0x"):
		num, ok := new(big.Int).SetString(strings.TrimPrefix(arg, "0x"), 16)
		if !ok {
			return "", &ParseError{Arg: arg, Err: fmt.Errorf("invalid hex digits")}
		}
		b.WriteString(hexToFloat(num))

	case isDecimalInteger(arg):
		num, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return "", &ParseError{Arg: arg, Err: fmt.Errorf("invalid decimal digits")}
		}
		b.WriteString(hexToFloat(num))
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", &ParseError{Arg: arg, Err: err}
		}
		b.WriteString(floatToHex(v))

	default:
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", &ParseError{Arg: arg, Err: err}
		}
		b.WriteString(floatToHex(v))
	}

	return b.String(), nil
}

func isDecimalInteger(arg string) bool {
	_, err := strconv.ParseUint(arg, 10, 64)
	return err == nil
}

// floatToHex renders a decimal value's encoding in each of
// binary16/32/64, plus each one's hardfloat and FloPoCo recodings.
func floatToHex(v float64) string {
	var b strings.Builder
	b.WriteString("  float -> hex:\n")
	for _, d := range format.All {
		bits := d.FromFloat64(v)
		hf := recode.ToHardfloat(d, bits)
		fpc := recode.ToFlopoco(d, bits)
		fmt.Fprintf(&b, "    %s: %#x(%s)\n", d.Name, bits, d.Print(bits))
		fmt.Fprintf(&b, "    h%s: %#x(%s)\n", d.Name, hf, recode.PrintHardfloat(d, hf))
		fmt.Fprintf(&b, "    fpc%s: %#x(%s)\n", d.Name, fpc, recode.PrintFlopoco(d, fpc))
	}
	return b.String()
}

// hexToFloat renders num chunked into binary16/32/64-width slices
// (from the LSB up), each slice decoded as a float value of that
// width and printed MSB-chunk-first.
func hexToFloat(num *big.Int) string {
	var b strings.Builder
	b.WriteString("  hex -> float:\n")
	fmt.Fprintf(&b, "    hex: %#x\n", num)
	for _, d := range format.All {
		fmt.Fprintf(&b, "    %s:", d.Name)
		for _, chunk := range chunks(num, d.Width()) {
			fmt.Fprintf(&b, " %s", formatValue(d.ToFloat64(chunk)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// chunks splits num into width-bit slices starting at bit 0, and
// returns them MSB-chunk-first (matching the display order of the
// reference hex -> float report).
func chunks(num *big.Int, width uint) []*big.Int {
	numBits := uint(num.BitLen())
	if numBits == 0 {
		numBits = 1
	}
	var out []*big.Int
	for offset := uint(0); offset < numBits; offset += width {
		hi := offset + width - 1
		if hi > numBits-1 {
			hi = numBits - 1
		}
		shifted := new(big.Int).Rsh(num, offset)
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), hi-offset+1), big.NewInt(1))
		out = append(out, shifted.And(shifted, mask))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
