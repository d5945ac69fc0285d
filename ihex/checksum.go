package ihex

// Checksum computes the 8-bit Intel HEX checksum of data.
//
// The checksum is the 2's complement of the byte-wise sum, so that adding it
// to the sum of all record bytes yields 0 modulo 256. It is calculated over
// the byte count, both offset bytes, the kind and the payload.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	// Return 2's complement: invert and add 1
	return (sum ^ 0xFF) + 1
}

// rowChecksum computes the checksum of a record from its fields without
// assembling them into a buffer first.
func rowChecksum(kind Kind, offset uint16, payload []byte) byte {
	sum := byte(len(payload))
	sum += byte(offset >> 8) // Offset high byte
	sum += byte(offset)      // Offset low byte
	sum += byte(kind)
	for _, b := range payload {
		sum += b
	}
	return (sum ^ 0xFF) + 1
}
