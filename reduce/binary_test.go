package reduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatToBin(t *testing.T) {
	cases := []struct {
		p    float64
		bits []bool
	}{
		{0.5, []bool{true}},
		{0.25, []bool{false, true}},
		{0.75, []bool{true, true}},
		{0.125, []bool{false, false, true}},
	}
	for _, tc := range cases {
		bits, err := FloatToBin(tc.p, DefaultMinBits, DefaultMaxBits, DefaultRelTol)
		require.NoError(t, err)
		assert.Equal(t, tc.bits, bits, "p = %v", tc.p)
	}
}

func TestFloatToBinDomain(t *testing.T) {
	for _, p := range []float64{0, 1, -0.5, 1.5} {
		_, err := FloatToBin(p, DefaultMinBits, DefaultMaxBits, DefaultRelTol)
		assert.Error(t, err, "p = %v", p)
	}
}

func TestFloatToBinEarlyStop(t *testing.T) {
	// 1/3 is infinite in binary; the expansion stops once the relative
	// tolerance is met after the minimum number of bits.
	bits, err := FloatToBin(1.0/3, DefaultMinBits, DefaultMaxBits, DefaultRelTol)
	require.NoError(t, err)
	expect := []bool{false, true, false, true, false, true, false, true, false, true}
	assert.Equal(t, expect, bits)
}

func TestFloatToBinTruncatesBelow(t *testing.T) {
	bits, err := FloatToBin(1.0/3, 4, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, bits)
	assert.LessOrEqual(t, BinToFloat(bits), 1.0/3)
}

func TestRoundTrip64(t *testing.T) {
	ps := []float64{1.0 / 3, 0.1, 0.7, 0.999, 1e-9, 0.5000001, 2.0 / 3}
	for _, p := range ps {
		bits, err := FloatToBin(p, 64, 64, 0)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(bits), 64)
		assert.Less(t, math.Abs(p-BinToFloat(bits)), math.Ldexp(1, -64), "p = %v", p)
	}
}

func TestBinToFloat(t *testing.T) {
	assert.Equal(t, 0.0, BinToFloat(nil))
	assert.Equal(t, 0.5, BinToFloat([]bool{true}))
	assert.Equal(t, 0.125, BinToFloat([]bool{false, false, true}))
	assert.Equal(t, 0.8125, BinToFloat([]bool{true, true, false, true}))
}
