package ihex

import "fmt"

// Kind is the record type field of an Intel HEX record.
//
// Any 8-bit value read from a record is kept as-is; only the six standard
// kinds below are known to this package.
type Kind byte

// Standard Intel HEX record kinds.
const (
	// Data holds payload bytes addressed relative to the current window
	Data Kind = 0x00

	// EndOfFile terminates the record stream, it carries no payload
	EndOfFile Kind = 0x01

	// ExtendedSegmentAddress sets bits 4-19 of the segment base address
	ExtendedSegmentAddress Kind = 0x02

	// StartSegmentAddress holds the CS:IP start address of 80x86 targets
	StartSegmentAddress Kind = 0x03

	// ExtendedLinearAddress sets bits 16-31 of the 32-bit address window
	ExtendedLinearAddress Kind = 0x04

	// StartLinearAddress holds the 32-bit execution start address
	StartLinearAddress Kind = 0x05
)

var kindNames = map[Kind]string{
	Data:                   "Data",
	EndOfFile:              "EndOfFile",
	ExtendedSegmentAddress: "ExtendedSegmentAddress",
	StartSegmentAddress:    "StartSegmentAddress",
	ExtendedLinearAddress:  "ExtendedLinearAddress",
	StartLinearAddress:     "StartLinearAddress",
}

// Known returns true if k is one of the six standard record kinds.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(0x%02X)", byte(k))
}
