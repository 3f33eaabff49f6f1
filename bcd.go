package arinc429

import "github.com/shopspring/decimal"

// BCD sign/status matrix codes.
const (
	BCDPlus  = 0
	BCDNorth = 0
	BCDEast  = 0
	BCDRight = 0
	BCDTo    = 0
	BCDAbove = 0

	BCDNoComputedData = 1
	BCDFunctionalTest = 2

	BCDMinus = 3
	BCDSouth = 3
	BCDWest  = 3
	BCDLeft  = 3
	BCDFrom  = 3
	BCDBelow = 3
)

// BCD interprets binary coded decimal values: each 4-bit nibble of the
// encoding holds one decimal digit, with the sign carried separately as an
// SSM code. Instances are immutable value objects.
type BCD struct {
	encoded    int64
	decoded    decimal.Decimal
	resolution decimal.Decimal
	sign       int
}

// NewBCD forms a BCD datum from an engineering value. The value is adjusted
// to the lesser multiple of resolution, its decimal digits are packed into
// nibbles most significant digit first, and the sign is recorded as BCDPlus
// or BCDMinus.
func NewBCD(value, resolution decimal.Decimal) (*BCD, error) {
	if resolution.IsZero() {
		return nil, ErrZeroResolution
	}
	quotient := floorDiv(value, resolution)
	sign := BCDPlus
	if quotient.Sign() < 0 {
		sign = BCDMinus
	}
	magnitude := quotient.IntPart()
	if magnitude < 0 {
		magnitude = -magnitude
	}
	var digits []int64
	for m := magnitude; ; m /= 10 {
		digits = append(digits, m%10)
		if m < 10 {
			break
		}
	}
	var encoded int64
	for i := len(digits) - 1; i >= 0; i-- {
		encoded = encoded<<4 | digits[i]
	}
	return &BCD{
		encoded:    encoded,
		decoded:    quotient.Mul(resolution),
		resolution: resolution,
		sign:       sign,
	}, nil
}

// DecodeBCD forms a BCD datum from encoded data. Every nibble of encoded
// must be a decimal digit 0-9; a nibble of 0xA-0xF fails with a
// DecodeError. A sign code of BCDMinus yields a negative value, any other
// code a positive one.
func DecodeBCD(encoded uint32, sign int, resolution decimal.Decimal) (*BCD, error) {
	if resolution.IsZero() {
		return nil, ErrZeroResolution
	}
	var intValue int64
	multiplier := int64(1)
	for e, position := encoded, 0; e != 0; e, position = e>>4, position+1 {
		nibble := uint8(e & 0xF)
		if nibble > 9 {
			return nil, &DecodeError{Value: int64(encoded), Nibble: nibble, Position: position}
		}
		intValue += int64(nibble) * multiplier
		multiplier *= 10
	}
	value := decimal.NewFromInt(intValue).Mul(resolution)
	if sign == BCDMinus {
		value = value.Neg()
	}
	return NewBCD(value, resolution)
}

// EncodedValue returns the nibble-packed digits suitable for bit-packing.
// The sign is not part of the encoding; it travels in the SSM field.
func (b *BCD) EncodedValue() int64 {
	return b.encoded
}

// DecodedValue returns the signed engineering value, a multiple of the
// resolution.
func (b *BCD) DecodedValue() decimal.Decimal {
	return b.decoded
}

// Resolution returns the scale of each digit.
func (b *BCD) Resolution() decimal.Decimal {
	return b.resolution
}

// Sign returns the sign code of the datum, BCDPlus or BCDMinus.
func (b *BCD) Sign() int {
	return b.sign
}

// Equal reports whether two BCD data carry the same encoding, sign, value
// and resolution.
func (b *BCD) Equal(other *BCD) bool {
	return other != nil &&
		b.encoded == other.encoded &&
		b.sign == other.sign &&
		b.decoded.Equal(other.decoded) &&
		b.resolution.Equal(other.resolution)
}

func (b *BCD) String() string {
	return b.decoded.String()
}
