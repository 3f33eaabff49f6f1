package arinc429

import (
	"errors"
	"fmt"
)

// ErrZeroResolution is returned by the BCD and BNR constructors when the
// resolution is zero, which would make the scaling quotient undefined.
var ErrZeroResolution = errors.New("resolution must be nonzero")

// RangeError reports a bit range, label, bit length or parity type outside
// its valid bounds.
type RangeError struct {
	What  string
	Min   int64
	Max   int64
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be >= %d and <= %d: %d", e.What, e.Min, e.Max, e.Value)
}

// FieldOverflowError reports an attempt to assign a value to a bit field of
// insufficient length.
type FieldOverflowError struct {
	Value     int64
	BitLength int
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("%#x overflows %d bit(s)", e.Value, e.BitLength)
}

// DecodeError reports a BCD nibble that is not a valid decimal digit.
// Position counts nibbles from the least significant end.
type DecodeError struct {
	Value    int64
	Nibble   uint8
	Position int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("nibble %d of %#x is %#x, not a decimal digit", e.Position, e.Value, e.Nibble)
}
