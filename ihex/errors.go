package ihex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHex is matched by every record decoding failure,
	// including checksum mismatches.
	ErrInvalidHex = errors.New("invalid hex input")

	// ErrRowTooLarge is matched when a record payload exceeds MaxPayloadSize.
	ErrRowTooLarge = errors.New("row too large")
)

// DecodeError indicates a malformed record line: missing start marker,
// non-hex characters or truncated fields.
type DecodeError struct {
	// Line is the 1-based input line number, 0 when parsing a single row
	Line int

	// Text is the offending record text
	Text string

	// Reason describes what is wrong with the record
	Reason string

	// Err is the underlying cause, if any
	Err error
}

func (e *DecodeError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, ErrInvalidHex, msg)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidHex, msg)
}

// Is reports whether target is ErrInvalidHex.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidHex
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ChecksumError indicates that the checksum stored in a record disagrees
// with the one computed from its fields. It is a decoding failure.
type ChecksumError struct {
	Line     int
	Text     string
	Expected byte
	Actual   byte
}

func (e *ChecksumError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: checksum mismatch: expected 0x%02X, got 0x%02X",
			e.Line, e.Expected, e.Actual)
	}
	return fmt.Sprintf("checksum mismatch: expected 0x%02X, got 0x%02X", e.Expected, e.Actual)
}

// Is reports whether target is ErrInvalidHex.
func (e *ChecksumError) Is(target error) bool {
	return target == ErrInvalidHex
}

// RowSizeError indicates an attempt to build a record with a payload that
// does not fit into the 8-bit byte count field.
type RowSizeError struct {
	Size int
}

func (e *RowSizeError) Error() string {
	return fmt.Sprintf("%s: payload is %d bytes, maximum is %d", ErrRowTooLarge, e.Size, MaxPayloadSize)
}

// Is reports whether target is ErrRowTooLarge.
func (e *RowSizeError) Is(target error) bool {
	return target == ErrRowTooLarge
}

// withLine attaches an input line number to record decoding errors.
func withLine(err error, line int) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		decodeErr.Line = line
		return decodeErr
	}
	var checksumErr *ChecksumError
	if errors.As(err, &checksumErr) {
		checksumErr.Line = line
		return checksumErr
	}
	return fmt.Errorf("line %d: %w", line, err)
}
