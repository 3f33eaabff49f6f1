package arinc429

import "github.com/shopspring/decimal"

// DataFieldType is the capability shared by the semantic data codecs (BCD,
// BNR, Discrete): each can surrender the integer encoding that
// Word.SetBitField packs into a field. Negative encodings are stored via
// their low-order two's-complement bits.
type DataFieldType interface {
	EncodedValue() int64
}

// DataField describes one field assignment request.
type DataField struct {
	LSB  int
	MSB  int
	Data int64
}

// DataFieldFrom builds a field assignment request from a codec value,
// coercing it to its integer encoding.
func DataFieldFrom(lsb, msb int, datum DataFieldType) DataField {
	return DataField{LSB: lsb, MSB: msb, Data: datum.EncodedValue()}
}

// floorDiv returns value/resolution truncated toward negative infinity, so
// a negative value coarsens to the next resolution multiple away from zero.
func floorDiv(value, resolution decimal.Decimal) decimal.Decimal {
	quotient, remainder := value.QuoRem(resolution, 0)
	if !remainder.IsZero() && remainder.Sign() != resolution.Sign() {
		quotient = quotient.Sub(decimal.NewFromInt(1))
	}
	return quotient
}
