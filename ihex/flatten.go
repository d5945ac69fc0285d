package ihex

import (
	"bytes"
	"strings"
)

// AddressedByte is a single data byte and its 32-bit address.
type AddressedByte struct {
	Address uint32
	Data    byte
}

// AddressedWord is a big-endian 32-bit word and the address of its first
// byte.
type AddressedWord struct {
	Address uint32
	Data    uint32
}

// WordSize is the number of bytes grouped into an AddressedWord.
const WordSize = 4

// ByteList returns the data bytes of the group with their addresses, in
// record order. Records of other kinds are skipped.
func (g *AddressGroup) ByteList() []AddressedByte {
	var list []AddressedByte
	for _, row := range g.rows {
		if row.kind != Data {
			continue
		}
		address := g.Address(row)
		for i, b := range row.payload {
			list = append(list, AddressedByte{Address: address + uint32(i), Data: b})
		}
	}
	return list
}

// ByteList returns the data bytes of all groups with their addresses, in
// group order.
func (img *Image) ByteList() []AddressedByte {
	var list []AddressedByte
	for _, g := range img.groups {
		list = append(list, g.ByteList()...)
	}
	return list
}

// WordList groups the byte list into big-endian 32-bit words. A trailing
// group of fewer than 4 bytes is still emitted, built from the bytes present.
func (img *Image) WordList() []AddressedWord {
	byteList := img.ByteList()

	words := make([]AddressedWord, 0, (len(byteList)+WordSize-1)/WordSize)
	for i := 0; i < len(byteList); i += WordSize {
		end := min(i+WordSize, len(byteList))

		word := AddressedWord{Address: byteList[i].Address}
		for _, b := range byteList[i:end] {
			word.Data = word.Data<<8 | uint32(b.Data)
		}
		words = append(words, word)
	}
	return words
}

// BinaryText returns the payloads of all data records of the group,
// concatenated in record order.
func (g *AddressGroup) BinaryText() []byte {
	var buf bytes.Buffer
	for _, row := range g.rows {
		buf.Write(row.BinaryText())
	}
	return buf.Bytes()
}

// BinaryText returns the payloads of all data records of the image,
// concatenated in group and record order. Gaps between records are not
// filled, use PaddedBinary for an address-true binary.
func (img *Image) BinaryText() []byte {
	var buf bytes.Buffer
	for _, g := range img.groups {
		buf.Write(g.BinaryText())
	}
	if buf.Len() == 0 {
		return []byte{}
	}
	return buf.Bytes()
}

// HexText returns the Intel HEX text of the image, one record per line.
// Every group is introduced by its extended linear address record, except
// for an implicit window 0 group.
func (img *Image) HexText() string {
	var sb strings.Builder
	for _, g := range img.groups {
		if !g.implicit {
			sb.WriteString(g.header.String())
			sb.WriteByte('\n')
		}
		for _, row := range g.rows {
			sb.WriteString(row.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
