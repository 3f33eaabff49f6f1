package arinc429

import "github.com/shopspring/decimal"

// BNR sign matrix codes.
const (
	BNRPlus  = 0
	BNRNorth = 0
	BNREast  = 0
	BNRRight = 0
	BNRTo    = 0
	BNRAbove = 0
	BNRMinus = 1
	BNRSouth = 1
	BNRWest  = 1
	BNRLeft  = 1
	BNRFrom  = 1
	BNRBelow = 1
)

// BNR status matrix codes.
const (
	BNRFailureWarning  = 0
	BNRNoComputedData  = 1
	BNRFunctionalTest  = 2
	BNRNormalOperation = 3
)

// BNR interprets binary number representation values: signed
// two's-complement integers scaled by a resolution. Instances are immutable
// value objects.
type BNR struct {
	encoded    int64
	decoded    decimal.Decimal
	resolution decimal.Decimal
}

// NewBNR forms a BNR datum from an engineering value. When value is not a
// multiple of resolution it is adjusted to the lesser multiple, so the
// decoded value held by the result may be coarser than the input.
func NewBNR(value, resolution decimal.Decimal) (*BNR, error) {
	if resolution.IsZero() {
		return nil, ErrZeroResolution
	}
	quotient := floorDiv(value, resolution)
	return &BNR{
		encoded:    quotient.IntPart(),
		decoded:    quotient.Mul(resolution),
		resolution: resolution,
	}, nil
}

// DecodeBNR forms a BNR datum from encoded data. The low bitLength bits of
// encoded are read as a two's-complement integer: a set top bit sign-extends
// the value before scaling.
func DecodeBNR(encoded uint32, bitLength int, resolution decimal.Decimal) (*BNR, error) {
	if bitLength < 1 || bitLength > MSB {
		return nil, &RangeError{What: "bit length", Min: 1, Max: MSB, Value: int64(bitLength)}
	}
	value := int64(encoded)
	if value>>(bitLength-1)&1 == 1 {
		value -= int64(1) << bitLength
	}
	return NewBNR(decimal.NewFromInt(value).Mul(resolution), resolution)
}

// EncodedValue returns the signed integer encoding suitable for bit-packing.
func (b *BNR) EncodedValue() int64 {
	return b.encoded
}

// DecodedValue returns the engineering value, a multiple of the resolution.
func (b *BNR) DecodedValue() decimal.Decimal {
	return b.decoded
}

// Resolution returns the scaling factor.
func (b *BNR) Resolution() decimal.Decimal {
	return b.resolution
}

// Equal reports whether two BNR data carry the same encoding, value and
// resolution.
func (b *BNR) Equal(other *BNR) bool {
	return other != nil &&
		b.encoded == other.encoded &&
		b.decoded.Equal(other.decoded) &&
		b.resolution.Equal(other.resolution)
}

func (b *BNR) String() string {
	return b.decoded.String()
}
