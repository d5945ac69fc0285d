package ihex

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Constants for Intel HEX record parsing.
const (
	// StartCode is the character every record line begins with
	StartCode = ':'

	// MaxPayloadSize is the largest payload the 8-bit byte count can describe
	MaxPayloadSize = 255

	// MinimumRowLength is the length in characters of a record with an
	// empty payload: start code, count(2), offset(4), kind(2), checksum(2)
	MinimumRowLength = 11

	// RowHeaderSize is the size of record metadata (count + offset + kind)
	RowHeaderSize = 4

	// RowChecksumSize is the size of the record checksum field
	RowChecksumSize = 1
)

// Row is a single Intel HEX record.
//
// A Row is immutable once constructed. Rows built by NewRow always carry a
// consistent checksum, rows built by ParseRow are rejected when the stored
// checksum disagrees with the computed one.
type Row struct {
	kind     Kind
	offset   uint16
	payload  []byte
	checksum byte
}

// DefaultAddressRow is the extended linear address record selecting window
// 0. It heads the address group that is synthesized for inputs without any
// extended linear address record, such as images of 16-bit targets.
var DefaultAddressRow = mustRow(NewRow([]byte{0x00, 0x00}, 0, ExtendedLinearAddress))

// endOfFileRow terminates every image built from binary data.
var endOfFileRow = mustRow(NewRow(nil, 0, EndOfFile))

func mustRow(row *Row, err error) *Row {
	if err != nil {
		panic(err)
	}
	return row
}

// NewRow creates a record from its payload, window offset and kind, and
// computes its checksum. An empty payload is valid, it is used for the
// end of file record.
//
// Returns a *RowSizeError if the payload exceeds MaxPayloadSize.
//
// Example:
//
//	row, err := ihex.NewRow([]byte{0x00, 0x01, 0x02, 0x03}, 0, ihex.Data)
//	fmt.Println(row) // :0400000000010203F6
func NewRow(payload []byte, offset uint16, kind Kind) (*Row, error) {
	if len(payload) > MaxPayloadSize {
		return nil, &RowSizeError{Size: len(payload)}
	}

	row := &Row{
		kind:     kind,
		offset:   offset,
		payload:  make([]byte, len(payload)),
		checksum: rowChecksum(kind, offset, payload),
	}
	copy(row.payload, payload)
	return row, nil
}

// ParseRow parses a single record line.
//
// Surrounding whitespace is ignored. Lowercase hex digits are accepted.
//
// Record format:
//
//	:[Count(2)][Offset(4)][Kind(2)][Payload(2*Count)][Checksum(2)]
//
// Returns a *DecodeError for malformed lines and a *ChecksumError if the
// stored checksum is wrong; both match ErrInvalidHex with errors.Is.
func ParseRow(line string) (*Row, error) {
	text := strings.TrimSpace(line)

	if len(text) == 0 || text[0] != StartCode {
		return nil, &DecodeError{Text: text, Reason: "missing start code ':'"}
	}
	if len(text) < MinimumRowLength {
		return nil, &DecodeError{
			Text:   text,
			Reason: fmt.Sprintf("record too short: got %d characters, minimum is %d", len(text), MinimumRowLength),
		}
	}

	data, err := hex.DecodeString(text[1:])
	if err != nil {
		return nil, &DecodeError{Text: text, Reason: "invalid hex data", Err: err}
	}

	count := int(data[0])
	expectedLen := RowHeaderSize + count + RowChecksumSize
	if len(data) != expectedLen {
		return nil, &DecodeError{
			Text: text,
			Reason: fmt.Sprintf("data length mismatch: got %d bytes, expected %d (header=%d + payload=%d + checksum=%d)",
				len(data), expectedLen, RowHeaderSize, count, RowChecksumSize),
		}
	}

	offset := uint16(data[1])<<8 | uint16(data[2]) // Big-endian
	kind := Kind(data[3])
	payload := data[RowHeaderSize : RowHeaderSize+count]
	checksum := data[len(data)-1]

	calculated := Checksum(data[:len(data)-1])
	if checksum != calculated {
		return nil, &ChecksumError{Text: text, Expected: calculated, Actual: checksum}
	}

	row := &Row{
		kind:     kind,
		offset:   offset,
		payload:  make([]byte, count),
		checksum: checksum,
	}
	copy(row.payload, payload)
	return row, nil
}

// Kind returns the record kind.
func (r *Row) Kind() Kind { return r.kind }

// Offset returns the 16-bit window relative address of the record.
func (r *Row) Offset() uint16 { return r.offset }

// Checksum returns the record checksum.
func (r *Row) Checksum() byte { return r.checksum }

// Len returns the payload length, which is the record byte count.
func (r *Row) Len() int { return len(r.payload) }

// Payload returns a copy of the record payload.
func (r *Row) Payload() []byte {
	payload := make([]byte, len(r.payload))
	copy(payload, r.payload)
	return payload
}

// Bytes returns the binary form of the whole record: byte count, offset,
// kind, payload and checksum.
func (r *Row) Bytes() []byte {
	buf := make([]byte, 0, RowHeaderSize+len(r.payload)+RowChecksumSize)
	buf = append(buf, byte(len(r.payload)), byte(r.offset>>8), byte(r.offset), byte(r.kind))
	buf = append(buf, r.payload...)
	return append(buf, r.checksum)
}

// String returns the canonical text form of the record, using uppercase
// hex digits and no line terminator.
func (r *Row) String() string {
	var sb strings.Builder
	sb.Grow(MinimumRowLength + 2*len(r.payload))
	sb.WriteByte(StartCode)
	fmt.Fprintf(&sb, "%02X%04X%02X", len(r.payload), r.offset, byte(r.kind))
	for _, b := range r.payload {
		fmt.Fprintf(&sb, "%02X", b)
	}
	fmt.Fprintf(&sb, "%02X", r.checksum)
	return sb.String()
}

// BinaryText returns the bytes the record contributes to a flat binary
// image: the payload of a data record, nothing for any other kind.
func (r *Row) BinaryText() []byte {
	if r.kind != Data {
		return []byte{}
	}
	return r.Payload()
}

// Equal returns true if both records have identical fields.
func (r *Row) Equal(other *Row) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.kind == other.kind &&
		r.offset == other.offset &&
		r.checksum == other.checksum &&
		bytes.Equal(r.payload, other.payload)
}
