// Package record implements the binary record protocol used to flash the
// glyph database of BS210 flipdot signs.
//
// # Record Format
//
// A record carries one or more messages, each framed as:
//
//	[LEN][PAYLOAD...][CHECKSUM]
//
// Where:
//   - LEN = number of payload bytes (0-255)
//   - CHECKSUM = two's complement of the 8-bit sum of LEN and PAYLOAD
//
// A valid message therefore sums to zero including its checksum.
//
// # Building Records
//
// Use Builder for arbitrary records and NewDatabaseChunk for database writes:
//
//	chunk, err := record.NewDatabaseChunk(0x0020, data)
//
// The fixed queries of the flashing handshake are available as functions
// returning fresh copies, e.g. record.PrepareClear0().
//
// # Responses
//
// The sign answers with the magic byte 0x4F, optionally followed by a
// record. VerifyAck accepts only the bare magic byte, ResponsePayload
// validates and unwraps the record form:
//
//	payload, err := record.ResponsePayload(buf)
//	if errors.Is(err, record.ErrChecksumMismatch) {
//	    // corrupted on the wire
//	}
package record
