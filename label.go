package arinc429

import "math/bits"

// Label bounds, natural numeric order (octal 0o0 through 0o377).
const (
	MinLabel = 0
	MaxLabel = 0o377
)

// labelTable maps a natural label value to its bit-reversed bus encoding.
// Reversal is its own inverse, so the same table recovers a natural label
// from the stored bits. Built once at init and read-only afterward.
var labelTable [MaxLabel + 1]uint8

func init() {
	for label := range labelTable {
		labelTable[label] = bits.Reverse8(uint8(label))
	}
}

// reverseLabel returns the bit-reversed counterpart of an 8-bit label.
func reverseLabel(label uint8) uint8 {
	return labelTable[label]
}
