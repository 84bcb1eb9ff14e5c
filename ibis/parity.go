package ibis

// Parity computes the IBIS parity byte over data.
//
// The parity is an XOR fold of all bytes starting from ParitySeed, so the
// parity of an empty message is ParitySeed itself.
func Parity(data []byte) byte {
	p := byte(ParitySeed)
	for _, b := range data {
		p ^= b
	}
	return p
}
