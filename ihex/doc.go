// Package ihex converts firmware images between Intel HEX text and flat
// binary data.
//
// # Intel HEX Format
//
// An Intel HEX file is a sequence of text records, one per line. Every
// record starts with a colon followed by hex digits:
//
//	:[Count(2)][Offset(4)][Kind(2)][Payload(2*Count)][Checksum(2)]
//
// Example record:
//
//	:0400000000010203F6
//	  04 = Byte count (4 payload bytes)
//	  0000 = Offset within the current 64KiB window
//	  00 = Kind (data)
//	  00010203 = Payload
//	  F6 = Checksum (2's complement of the sum of all previous bytes)
//
// Record offsets are 16 bits wide. Extended linear address records (kind 04)
// select the upper 16 bits of the 32-bit address for the records following
// them. This package models each such window as an AddressGroup and the whole
// file as an Image.
//
// # Usage
//
// Parse a .hex file from disk:
//
//	img, err := ihex.Parse("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, w := range img.WordList() {
//	    fmt.Printf("0x%08X: 0x%08X\n", w.Address, w.Data)
//	}
//
// Convert a binary loaded at 0x08000000 to Intel HEX:
//
//	img, err := ihex.FromBinary(data, 0x08000000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = img.SaveHexFile("firmware.hex")
//
// # Error Handling
//
// Parsing stops at the first invalid record. Decoding failures match
// ErrInvalidHex and carry the offending line:
//   - *DecodeError for a missing start code, invalid hex digits or wrong lengths
//   - *ChecksumError for checksum mismatches
//
// Building a record with more than 255 payload bytes returns a *RowSizeError
// matching ErrRowTooLarge.
package ihex
