package arinc429

import "strconv"

// Discrete status matrix codes. Documented for caller convenience; the type
// itself places no meaning on its bits.
const (
	DiscreteNormalOperation = 0
	DiscreteVerifiedData    = 0
	DiscreteNoComputedData  = 1
	DiscreteFunctionalTest  = 2
	DiscreteFailureWarning  = 3
)

// Discrete interprets a raw field of discrete bits. No scaling or sign
// interpretation applies.
type Discrete struct {
	encoded int64
}

// NewDiscrete forms a Discrete datum wrapping value unchanged.
func NewDiscrete(value int64) *Discrete {
	return &Discrete{encoded: value}
}

// DecodeDiscrete forms a Discrete datum from encoded data.
func DecodeDiscrete(value uint32) *Discrete {
	return &Discrete{encoded: int64(value)}
}

// EncodedValue returns the raw bit pattern.
func (d *Discrete) EncodedValue() int64 {
	return d.encoded
}

// Equal reports whether two Discrete data carry the same bits.
func (d *Discrete) Equal(other *Discrete) bool {
	return other != nil && d.encoded == other.encoded
}

func (d *Discrete) String() string {
	return strconv.FormatInt(d.encoded, 10)
}
