package arinc429

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeBNR tests two's-complement decoding with sign extension
func TestDecodeBNR(t *testing.T) {
	tests := []struct {
		name       string
		encoded    uint32
		bitLength  int
		resolution string
		decoded    string
		intEncoded int64
	}{
		{
			name:       "Positive maximum of 4 bits",
			encoded:    0b0111,
			bitLength:  4,
			resolution: "1",
			decoded:    "7",
			intEncoded: 7,
		},
		{
			name:       "Sign bit set sign-extends",
			encoded:    0b1000,
			bitLength:  4,
			resolution: "1",
			decoded:    "-8",
			intEncoded: -8,
		},
		{
			name:       "All ones of 19 bits is minus one",
			encoded:    0x7FFFF,
			bitLength:  19,
			resolution: "1",
			decoded:    "-1",
			intEncoded: -1,
		},
		{
			name:       "Fractional resolution scales the value",
			encoded:    5,
			bitLength:  4,
			resolution: "0.5",
			decoded:    "2.5",
			intEncoded: 5,
		},
		{
			name:       "Negative value with fractional resolution",
			encoded:    0b1100,
			bitLength:  4,
			resolution: "0.25",
			decoded:    "-1",
			intEncoded: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution := decimal.RequireFromString(tt.resolution)
			bnr, err := DecodeBNR(tt.encoded, tt.bitLength, resolution)
			require.NoError(t, err)
			assert.True(t, bnr.DecodedValue().Equal(decimal.RequireFromString(tt.decoded)),
				"decoded %s, want %s", bnr.DecodedValue(), tt.decoded)
			assert.Equal(t, tt.intEncoded, bnr.EncodedValue())
			assert.True(t, bnr.Resolution().Equal(resolution))
		})
	}
}

// TestNewBNRFlooring tests adjustment to the lesser resolution multiple
func TestNewBNRFlooring(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		resolution string
		encoded    int64
		decoded    string
	}{
		{
			name:       "Exact multiple unchanged",
			value:      "10.5",
			resolution: "0.5",
			encoded:    21,
			decoded:    "10.5",
		},
		{
			name:       "Positive value floors toward zero",
			value:      "10.75",
			resolution: "0.5",
			encoded:    21,
			decoded:    "10.5",
		},
		{
			name:       "Negative value floors away from zero",
			value:      "-3.7",
			resolution: "0.5",
			encoded:    -8,
			decoded:    "-4",
		},
		{
			name:       "Negative value with unit resolution",
			value:      "-3.7",
			resolution: "1",
			encoded:    -4,
			decoded:    "-4",
		},
		{
			name:       "Zero",
			value:      "0",
			resolution: "1",
			encoded:    0,
			decoded:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bnr, err := NewBNR(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.resolution))
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, bnr.EncodedValue())
			assert.True(t, bnr.DecodedValue().Equal(decimal.RequireFromString(tt.decoded)),
				"decoded %s, want %s", bnr.DecodedValue(), tt.decoded)
		})
	}
}

// TestBNRRoundTrip tests encode-mask-decode through a 19-bit data field
func TestBNRRoundTrip(t *testing.T) {
	values := []struct {
		value      string
		resolution string
	}{
		{"100", "1"},
		{"-100", "1"},
		{"12.75", "0.25"},
		{"-0.5", "0.5"},
		{"-3.7", "0.5"},
	}

	const bitLength = 19
	for _, v := range values {
		t.Run(v.value, func(t *testing.T) {
			resolution := decimal.RequireFromString(v.resolution)
			bnr, err := NewBNR(decimal.RequireFromString(v.value), resolution)
			require.NoError(t, err)

			encoded := uint32(bnr.EncodedValue()) & 0x7FFFF
			decoded, err := DecodeBNR(encoded, bitLength, resolution)
			require.NoError(t, err)
			assert.True(t, decoded.Equal(bnr), "decoded %s, want %s", decoded, bnr)
		})
	}
}

// TestDecodeBNRBitLengthValidation tests rejection of bad bit lengths
func TestDecodeBNRBitLengthValidation(t *testing.T) {
	for _, bitLength := range []int{0, -1, 33} {
		_, err := DecodeBNR(1, bitLength, decimal.NewFromInt(1))
		var rangeErr *RangeError
		assert.ErrorAs(t, err, &rangeErr)
	}
}

// TestBNRZeroResolution tests rejection of a zero scaling factor
func TestBNRZeroResolution(t *testing.T) {
	_, err := NewBNR(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, ErrZeroResolution)

	_, err = DecodeBNR(1, 4, decimal.Zero)
	assert.ErrorIs(t, err, ErrZeroResolution)
}

// TestBNREqual tests structural equality
func TestBNREqual(t *testing.T) {
	a, err := NewBNR(decimal.RequireFromString("2.5"), decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	b, err := NewBNR(decimal.RequireFromString("2.5"), decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	c, err := NewBNR(decimal.RequireFromString("2.5"), decimal.RequireFromString("0.25"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
