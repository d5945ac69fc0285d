package ihex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Image is a complete memory map: an ordered list of address groups.
//
// Groups may describe overlapping memory, this is not detected.
type Image struct {
	groups []*AddressGroup
}

func (img *Image) appendGroup(g *AddressGroup) {
	img.groups = append(img.groups, g)
}

// current returns the most recently opened group, opening the default
// window 0 group if there is none yet.
func (img *Image) current() *AddressGroup {
	if len(img.groups) == 0 {
		img.appendGroup(newDefaultGroup())
	}
	return img.groups[len(img.groups)-1]
}

// Groups returns the address groups of the image in order.
func (img *Image) Groups() []*AddressGroup {
	groups := make([]*AddressGroup, len(img.groups))
	copy(groups, img.groups)
	return groups
}

// RowCount returns the number of records in the image, excluding the
// extended linear address records heading each group.
func (img *Image) RowCount() int {
	n := 0
	for _, g := range img.groups {
		n += len(g.rows)
	}
	return n
}

// StartAddress returns the execution start address stored in a start
// linear address record, if the image has one.
func (img *Image) StartAddress() (uint32, bool) {
	for _, g := range img.groups {
		for _, row := range g.rows {
			if row.kind == StartLinearAddress && len(row.payload) == 4 {
				p := row.payload
				return uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3]), true
			}
		}
	}
	return 0, false
}

// Parse parses an Intel HEX file from the given file path.
//
// Example:
//
//	img, err := ihex.Parse("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Groups: %d\n", len(img.Groups()))
func Parse(path string, opts ...Option) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f, opts...)
}

// ParseReader parses Intel HEX text from any io.Reader.
func ParseReader(r io.Reader, opts ...Option) (*Image, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hex data: %w", err)
	}

	return ParseLines(lines, opts...)
}

// ParseLines assembles an image from Intel HEX record lines.
//
// Every extended linear address record opens a new address group, all other
// records are appended to the most recently opened group. Records preceding
// the first extended linear address record go into an implicit window 0
// group. Blank lines are skipped. The first malformed line aborts parsing,
// the returned error carries its 1-based line number.
func ParseLines(lines []string, opts ...Option) (*Image, error) {
	cfg := newConfig(opts)
	img := &Image{}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := ParseRow(line)
		if err != nil {
			return nil, withLine(err, i+1)
		}

		if row.kind == ExtendedLinearAddress {
			g, err := newAddressGroup(row)
			if err != nil {
				return nil, withLine(err, i+1)
			}
			img.appendGroup(g)
			continue
		}

		img.current().append(row)
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("Parsed hex image",
			log.Int("lines", len(lines)),
			log.Int("groups", len(img.groups)),
			log.Int("rows", img.RowCount()))
	}
	return img, nil
}
