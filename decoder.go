package arinc429

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/sirupsen/logrus"
)

// WordFields holds the fields split out of a received word. Data carries
// the raw 19 data bits; interpreting them as BCD, BNR or Discrete takes
// higher-level knowledge of the label.
type WordFields struct {
	Label    uint8
	SDI      uint8
	Data     uint32
	SSM      uint8
	Parity   uint8
	ParityOK bool
}

// Decoder splits raw 32-bit words into their fields under an assumed parity
// type, verifying the parity bit on the way. It covers the consumer side of
// the word contract.
type Decoder struct {
	logger     *logrus.Logger
	parityType ParityType
}

// NewDecoder creates a decoder. A nil logger disables logging.
func NewDecoder(parityType ParityType, logger *logrus.Logger) *Decoder {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Decoder{
		logger:     logger,
		parityType: parityType,
	}
}

// Decode splits a raw word into its fields. ParityOK reports whether the
// received parity bit matches the count of 1-bits across bits 1-31 under
// the assumed parity type.
func (d *Decoder) Decode(raw uint32) *WordFields {
	// The word is wrapped directly rather than through NewWord, which
	// would overwrite the received parity bit.
	word := Word{value: raw, parityType: d.parityType}
	count := bits.OnesCount32(raw &^ (1 << (ParityBit - 1)))
	fields := &WordFields{
		Label:  word.Label(),
		SDI:    word.SDI(),
		Data:   word.Data(),
		SSM:    word.SSM(),
		Parity: word.Parity(),
	}
	fields.ParityOK = int(fields.Parity) == (count+int(d.parityType))%2
	d.logger.WithFields(logrus.Fields{
		"word":      fmt.Sprintf("%#010x", raw),
		"label":     fmt.Sprintf("%#o", fields.Label),
		"sdi":       fields.SDI,
		"ssm":       fields.SSM,
		"parity_ok": fields.ParityOK,
	}).Debug("Decoded ARINC 429 word")
	return fields
}
