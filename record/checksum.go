package record

// Checksum computes the BS210 checksum over a message's length byte and
// payload: the two's complement of the 8-bit sum, so that a complete
// message including its checksum sums to zero.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	// Return 2's complement: invert and add 1
	return ^sum + 1
}
