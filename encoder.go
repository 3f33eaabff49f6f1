package arinc429

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Encoder packs labels, SDI, data and SSM codes into ARINC 429 words under
// a fixed parity setting. It covers the producer side of the word contract;
// putting words on a bus is the caller's business.
type Encoder struct {
	logger     *logrus.Logger
	parityType ParityType
}

// NewEncoder creates an encoder. A nil logger disables logging.
func NewEncoder(parityType ParityType, logger *logrus.Logger) *Encoder {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Encoder{
		logger:     logger,
		parityType: parityType,
	}
}

// Encode builds a word from a natural label, an SDI, a raw data field value
// and an SSM code, and returns the packed 32-bit word with its parity bit
// set.
func (e *Encoder) Encode(label int, sdi, data, ssm int64) (uint32, error) {
	word, err := NewWord(0, e.parityType)
	if err != nil {
		return 0, err
	}
	if err := word.SetLabel(label); err != nil {
		return 0, err
	}
	if err := word.SetSDI(sdi); err != nil {
		return 0, err
	}
	if err := word.SetData(data); err != nil {
		return 0, err
	}
	if err := word.SetSSM(ssm); err != nil {
		return 0, err
	}
	e.logger.WithFields(logrus.Fields{
		"label": fmt.Sprintf("%#o", label),
		"sdi":   sdi,
		"ssm":   ssm,
		"word":  fmt.Sprintf("%#010x", word.Value()),
	}).Debug("Packed ARINC 429 word")
	return word.Value(), nil
}

// EncodeData builds a word from a codec value, coercing it to its integer
// encoding at the packing boundary.
func (e *Encoder) EncodeData(label int, sdi int64, datum DataFieldType, ssm int64) (uint32, error) {
	return e.Encode(label, sdi, datum.EncodedValue(), ssm)
}
