package ihex

// WindowSize is the number of bytes addressable by the 16-bit record offset.
const WindowSize = 0x10000

// AddressGroup is a 64KiB addressing window: the extended linear address
// record selecting it and the records that follow it.
type AddressGroup struct {
	header   *Row
	base     uint32
	rows     []*Row
	implicit bool
}

// newAddressGroup opens a group from an extended linear address record.
func newAddressGroup(header *Row) (*AddressGroup, error) {
	if header.Kind() != ExtendedLinearAddress || header.Len() != 2 {
		return nil, &DecodeError{
			Text:   header.String(),
			Reason: "extended linear address record must carry exactly 2 bytes",
		}
	}
	return &AddressGroup{
		header: header,
		base:   uint32(header.payload[0])<<24 | uint32(header.payload[1])<<16,
	}, nil
}

// newWindowGroup opens the group for the given window index.
func newWindowGroup(window uint16) *AddressGroup {
	header := mustRow(NewRow([]byte{byte(window >> 8), byte(window)}, 0, ExtendedLinearAddress))
	return &AddressGroup{
		header: header,
		base:   uint32(window) << 16,
	}
}

// newDefaultGroup returns the window 0 group used when an input starts
// without an extended linear address record.
func newDefaultGroup() *AddressGroup {
	return &AddressGroup{
		header:   DefaultAddressRow,
		implicit: true,
	}
}

func (g *AddressGroup) append(row *Row) {
	g.rows = append(g.rows, row)
}

// Base returns the base address of the window, bits 16-31 of every address
// in the group.
func (g *AddressGroup) Base() uint32 { return g.base }

// Header returns the extended linear address record heading the group.
func (g *AddressGroup) Header() *Row { return g.header }

// Implicit returns true if the group was synthesized because the input had
// no extended linear address record ahead of its first records.
func (g *AddressGroup) Implicit() bool { return g.implicit }

// Rows returns the records of the group in insertion order.
func (g *AddressGroup) Rows() []*Row {
	rows := make([]*Row, len(g.rows))
	copy(rows, g.rows)
	return rows
}

// DataRows returns the data records of the group in insertion order.
func (g *AddressGroup) DataRows() []*Row {
	var rows []*Row
	for _, row := range g.rows {
		if row.kind == Data {
			rows = append(rows, row)
		}
	}
	return rows
}

// Address returns the effective 32-bit address of a record in this group.
func (g *AddressGroup) Address(row *Row) uint32 {
	return g.base | uint32(row.offset)
}
