package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportDecimalFloat(t *testing.T) {
	out, err := Report("1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "1.5:\n")
	assert.Contains(t, out, "  float -> hex:\n")
	assert.Contains(t, out, "f16:")
	assert.Contains(t, out, "hf16:")
	assert.Contains(t, out, "fpcf16:")
	assert.NotContains(t, out, "hex -> float")
}

func TestReportHexPrefixed(t *testing.T) {
	out, err := Report("0x3c00")
	require.NoError(t, err)
	assert.Contains(t, out, "  hex -> float:\n")
	assert.Contains(t, out, "hex: 0x3c00\n")
	assert.NotContains(t, out, "float -> hex")
}

func TestReportDecimalIntegerIsBoth(t *testing.T) {
	out, err := Report("100")
	require.NoError(t, err)
	assert.Contains(t, out, "  hex -> float:\n")
	assert.Contains(t, out, "  float -> hex:\n")
}

func TestReportInvalidFloatIsError(t *testing.T) {
	_, err := Report("not-a-number")
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReportInvalidHexIsError(t *testing.T) {
	_, err := Report("0xzzzz")
	require.Error(t, err)
}

func TestHexToFloatChunking(t *testing.T) {
	// 0x3c00 is binary16 +1.0; as a single 16-bit value it should
	// decode to "1" in the f16 row.
	out, err := Report("0x3c00")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	var f16Line string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "f16:") {
			f16Line = l
			break
		}
	}
	require.NotEmpty(t, f16Line)
	assert.Contains(t, f16Line, "1")
}
