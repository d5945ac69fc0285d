package ihex

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// FromBinary converts a flat binary buffer loaded at the base address into
// an image.
//
// The first group selects the window of the base address. Whenever the data
// reaches the end of a 64KiB window a new extended linear address record is
// emitted for the next window and record offsets restart at 0. Data records
// carry DefaultRowSize bytes unless changed with WithRowSize, the last record
// of a window may be shorter. The image is terminated by an end of file
// record.
//
// Example:
//
//	img, err := ihex.FromBinary(data, 0x08000000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(img.HexText())
func FromBinary(data []byte, base uint32, opts ...Option) (*Image, error) {
	b := newImageBuilder(opts)
	if err := b.addSegment(base, data); err != nil {
		return nil, err
	}
	return b.finish()
}

// FromSegments converts multiple binary segments into a single image. Each
// segment starts with an extended linear address record for its window,
// segments are emitted in the given order.
func FromSegments(segments []Segment, opts ...Option) (*Image, error) {
	b := newImageBuilder(opts)
	for _, seg := range segments {
		if err := b.addSegment(seg.Address, seg.Data); err != nil {
			return nil, err
		}
	}
	return b.finish()
}

// LoadBinary reads a binary file and converts it into an image loaded at
// the base address.
func LoadBinary(path string, base uint32, opts ...Option) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadBinaryReader(f, base, opts...)
}

// LoadBinaryReader reads binary data from any io.Reader and converts it into
// an image loaded at the base address.
func LoadBinaryReader(r io.Reader, base uint32, opts ...Option) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read binary data: %w", err)
	}
	return FromBinary(data, base, opts...)
}

type imageBuilder struct {
	cfg Config
	img *Image
}

func newImageBuilder(opts []Option) *imageBuilder {
	return &imageBuilder{
		cfg: newConfig(opts),
		img: &Image{},
	}
}

func (b *imageBuilder) addSegment(base uint32, data []byte) error {
	window := uint16(base >> 16)
	offset := base & 0xFFFF

	g := newWindowGroup(window)
	b.img.appendGroup(g)

	for pos := 0; pos < len(data); {
		remaining := WindowSize - offset
		if remaining == 0 {
			window++
			offset = 0
			g = newWindowGroup(window)
			b.img.appendGroup(g)
			b.logDebug("Crossed address window",
				log.Hex("window", window),
				log.Int("position", pos))
			continue
		}

		n := int(min(remaining, uint32(len(data)-pos)))
		for n > 0 {
			size := min(b.cfg.RowSize, n)
			row, err := NewRow(data[pos:pos+size], uint16(offset), Data)
			if err != nil {
				return fmt.Errorf("creating data row at position %d: %w", pos, err)
			}
			g.append(row)

			pos += size
			offset += uint32(size)
			n -= size
		}
	}

	b.logDebug("Converted binary segment",
		log.Hex("base", base),
		log.Int("size", len(data)))
	return nil
}

func (b *imageBuilder) finish() (*Image, error) {
	g := b.img.current()

	if b.cfg.StartAddress != nil {
		addr := *b.cfg.StartAddress
		row, err := NewRow([]byte{byte(addr >> 24), byte(addr >> 16), byte(addr >> 8), byte(addr)}, 0, StartLinearAddress)
		if err != nil {
			return nil, fmt.Errorf("creating start address row: %w", err)
		}
		g.append(row)
	}

	g.append(endOfFileRow)
	return b.img, nil
}

// logDebug logs a debug message if a logger is configured.
func (b *imageBuilder) logDebug(msg string, fields ...log.Field) {
	if b.cfg.Logger != nil {
		b.cfg.Logger.Debug(msg, fields...)
	}
}
