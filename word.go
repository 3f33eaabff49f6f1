// Package arinc429 encodes and decodes 32-bit ARINC 429 data words.
//
// A word carries a bit-reversed label, an SDI, a 19-bit data field, an SSM
// and a parity bit. Word maintains the parity bit automatically after every
// field write; the BCD, BNR and Discrete types translate data field contents
// between engineering values and their encoded bit patterns.
package arinc429

import (
	"fmt"
	"math/bits"
)

// ARINC 429 bit positions are 1-based.
const (
	LSB = 1  // Least significant bit of a word
	MSB = 32 // Most significant bit of a word
)

// BitFieldRange describes the position of a bit field within a word.
type BitFieldRange struct {
	LSB int
	MSB int
}

// Fixed field layout of an ARINC 429 word.
var (
	LabelBits = BitFieldRange{1, 8}   // Label field
	SDIBits   = BitFieldRange{9, 10}  // Source/Destination Identifier
	DataBits  = BitFieldRange{11, 29} // Data field
	SSMBits   = BitFieldRange{30, 31} // Sign/Status Matrix
)

// ParityBit is the bit position of the parity bit.
const ParityBit = MSB

// ParityType selects the target parity of a word.
type ParityType int

// Supported parity settings. The numeric values feed directly into the
// parity computation.
const (
	EvenParity ParityType = 0
	OddParity  ParityType = 1
)

// Word interprets and validates the composition of an ARINC 429 word.
//
// A Word is not safe for concurrent mutation: a field write updates the
// packed value and then the parity bit as one logical operation.
type Word struct {
	value      uint32
	parityType ParityType
}

// NewWord creates a word from an initial packed value and a parity type.
// The parity bit of value is recomputed immediately, so the stored word
// always satisfies the parity setting.
func NewWord(value uint32, parityType ParityType) (*Word, error) {
	w := &Word{}
	if err := w.SetParityType(parityType); err != nil {
		return nil, err
	}
	if err := w.SetBitField(LSB, MSB, int64(value)); err != nil {
		return nil, err
	}
	return w, nil
}

// Value returns the packed 32-bit word.
func (w *Word) Value() uint32 {
	return w.value
}

func validateBitFieldRange(lsb, msb int) error {
	switch {
	case lsb < LSB:
		return &RangeError{What: "LSB", Min: LSB, Max: MSB, Value: int64(lsb)}
	case msb > MSB:
		return &RangeError{What: "MSB", Min: LSB, Max: MSB, Value: int64(msb)}
	case msb < lsb:
		return &RangeError{What: "MSB", Min: int64(lsb), Max: MSB, Value: int64(msb)}
	}
	return nil
}

// validateBitLength verifies that value fits in bitLength bits. The upper
// bound is the full unsigned range and the lower bound the two's-complement
// signed range, so both raw codes and negative encodings are accepted.
func validateBitLength(bitLength int, value int64) error {
	if bitLength <= 0 {
		return &RangeError{What: "bit length", Min: 1, Max: MSB, Value: int64(bitLength)}
	}
	maxValue := int64(1)<<bitLength - 1
	minValue := -(int64(1) << (bitLength - 1))
	if value < minValue || value > maxValue {
		return &FieldOverflowError{Value: value, BitLength: bitLength}
	}
	return nil
}

// GetBitField returns the value of the bit field spanning lsb through msb,
// both 1-based and inclusive.
func (w *Word) GetBitField(lsb, msb int) (uint32, error) {
	if err := validateBitFieldRange(lsb, msb); err != nil {
		return 0, err
	}
	length := msb - lsb + 1
	offset := uint(lsb - 1)
	mask := uint32(uint64(1)<<length - 1)
	return (w.value >> offset) & mask, nil
}

// SetBitField changes the value of the bit field spanning lsb through msb.
// Negative values are stored via their low-order two's-complement bits; any
// sign extension beyond the field width is masked off. After the field is
// updated the parity bit is recomputed, so the word never holds a stale
// parity. Validation fully precedes mutation: on error the word is
// unchanged.
func (w *Word) SetBitField(lsb, msb int, value int64) error {
	if err := validateBitFieldRange(lsb, msb); err != nil {
		return err
	}
	length := msb - lsb + 1
	if err := validateBitLength(length, value); err != nil {
		return err
	}
	offset := uint(lsb - 1)
	mask := uint32(uint64(1)<<length - 1)
	w.value = w.value&^(mask<<offset) | (uint32(value)&mask)<<offset
	w.refreshParity()
	return nil
}

// SetBitFieldData packs a codec value into the bit field spanning lsb
// through msb, coercing it to its integer encoding at the packing boundary.
func (w *Word) SetBitFieldData(lsb, msb int, datum DataFieldType) error {
	return w.SetBitField(lsb, msb, datum.EncodedValue())
}

// SetField applies one field assignment request.
func (w *Word) SetField(field DataField) error {
	return w.SetBitField(field.LSB, field.MSB, field.Data)
}

// refreshParity recounts the 1-bits across bits 1-31 and rewrites the
// parity bit to match the parity setting.
func (w *Word) refreshParity() {
	count := bits.OnesCount32(w.value &^ (1 << (ParityBit - 1)))
	parity := uint32(count+int(w.parityType)) % 2
	w.value = w.value&^(1<<(ParityBit-1)) | parity<<(ParityBit-1)
}

// field extracts one of the fixed field ranges. The fixed ranges are always
// valid, so the error path of GetBitField cannot trigger.
func (w *Word) field(r BitFieldRange) uint32 {
	value, _ := w.GetBitField(r.LSB, r.MSB)
	return value
}

// Label returns the current label in its natural numeric order.
func (w *Word) Label() uint8 {
	return reverseLabel(uint8(w.field(LabelBits)))
}

// SetLabel changes the label. The label is given in natural numeric order
// (octal 0o0 through 0o377) and stored bit-reversed per the bus convention.
func (w *Word) SetLabel(label int) error {
	if label < MinLabel || label > MaxLabel {
		return &RangeError{What: "label", Min: MinLabel, Max: MaxLabel, Value: int64(label)}
	}
	return w.SetBitField(LabelBits.LSB, LabelBits.MSB, int64(reverseLabel(uint8(label))))
}

// SDI returns the current SDI setting.
func (w *Word) SDI() uint8 {
	return uint8(w.field(SDIBits))
}

// SetSDI changes the SDI setting.
func (w *Word) SetSDI(value int64) error {
	return w.SetBitField(SDIBits.LSB, SDIBits.MSB, value)
}

// Data returns the current value of the data field.
func (w *Word) Data() uint32 {
	return w.field(DataBits)
}

// SetData changes the value of the data field.
func (w *Word) SetData(value int64) error {
	return w.SetBitField(DataBits.LSB, DataBits.MSB, value)
}

// SetDataField packs a codec value into the data field.
func (w *Word) SetDataField(datum DataFieldType) error {
	return w.SetBitFieldData(DataBits.LSB, DataBits.MSB, datum)
}

// SSM returns the current SSM setting.
func (w *Word) SSM() uint8 {
	return uint8(w.field(SSMBits))
}

// SetSSM changes the SSM setting.
func (w *Word) SetSSM(value int64) error {
	return w.SetBitField(SSMBits.LSB, SSMBits.MSB, value)
}

// Parity returns the current parity bit.
func (w *Word) Parity() uint8 {
	return uint8(w.field(BitFieldRange{ParityBit, ParityBit}))
}

// ParityType returns the current parity setting.
func (w *Word) ParityType() ParityType {
	return w.parityType
}

// SetParityType changes the parity setting and refreshes the parity bit
// under the new setting. Bits 1-31 are not disturbed.
func (w *Word) SetParityType(parityType ParityType) error {
	if parityType != EvenParity && parityType != OddParity {
		return &RangeError{What: "parity type", Min: int64(EvenParity), Max: int64(OddParity), Value: int64(parityType)}
	}
	w.parityType = parityType
	return w.SetBitField(LSB, MSB, int64(w.value))
}

// String renders the word field by field, with the label in octal and the
// data field in hex.
func (w *Word) String() string {
	return fmt.Sprintf("Label=%#o, SDI=%d, Data=%#x, SSM=%d, Parity=%d",
		w.Label(), w.SDI(), w.Data(), w.SSM(), w.Parity())
}
