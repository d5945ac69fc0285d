package ihex

import (
	"fmt"

	"github.com/marcinbor85/gohex"
)

// Segment is a contiguous block of data at a 32-bit address.
type Segment struct {
	Address uint32
	Data    []byte
}

// Memory loads all data records of the image into a gohex memory, which
// merges adjacent records into contiguous segments. Overlapping data is
// rejected.
func (img *Image) Memory() (*gohex.Memory, error) {
	mem := gohex.NewMemory()

	for _, g := range img.groups {
		for _, row := range g.rows {
			if row.kind != Data || len(row.payload) == 0 {
				continue
			}
			address := g.Address(row)
			if err := mem.AddBinary(address, row.Payload()); err != nil {
				return nil, fmt.Errorf("adding row at 0x%08X: %w", address, err)
			}
		}
	}

	if start, ok := img.StartAddress(); ok {
		mem.SetStartAddress(start)
	}
	return mem, nil
}

// Segments returns the data of the image as contiguous segments sorted by
// address.
func (img *Image) Segments() ([]Segment, error) {
	mem, err := img.Memory()
	if err != nil {
		return nil, err
	}

	dataSegments := mem.GetDataSegments()
	segments := make([]Segment, 0, len(dataSegments))
	for _, s := range dataSegments {
		segments = append(segments, Segment{Address: s.Address, Data: s.Data})
	}
	return segments, nil
}

// PaddedBinary returns size bytes of memory starting at address, with every
// byte not covered by a data record set to fill.
//
// Example:
//
//	// Flash image of an erased 0xFF-filled device
//	bin, err := img.PaddedBinary(0x08000000, 0x10000, 0xFF)
func (img *Image) PaddedBinary(address, size uint32, fill byte) ([]byte, error) {
	mem, err := img.Memory()
	if err != nil {
		return nil, err
	}
	return mem.ToBinary(address, size, fill), nil
}

// FromMemory converts the segments of a gohex memory into an image. A start
// address set in the memory is written as a start linear address record.
func FromMemory(mem *gohex.Memory, opts ...Option) (*Image, error) {
	dataSegments := mem.GetDataSegments()
	segments := make([]Segment, 0, len(dataSegments))
	for _, s := range dataSegments {
		segments = append(segments, Segment{Address: s.Address, Data: s.Data})
	}

	if start, ok := mem.GetStartAddress(); ok {
		opts = append(opts, WithStartAddress(start))
	}
	return FromSegments(segments, opts...)
}
