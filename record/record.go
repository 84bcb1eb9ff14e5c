package record

// Record is a buffer of one or more BS210 messages, each laid out as:
//
//	[LEN][PAYLOAD...][CHECKSUM]
//
// LEN counts only the payload bytes. Records built through Builder or
// validated by Parse are always at least MinRecordSize bytes long.
type Record struct {
	data []byte
}

// Bytes returns the complete wire representation.
func (r Record) Bytes() []byte {
	b := make([]byte, len(r.data))
	copy(b, r.data)
	return b
}

// Len returns the number of bytes on the wire.
func (r Record) Len() int {
	return len(r.data)
}

// Payload returns the payload of the first message in the record.
func (r Record) Payload() []byte {
	if len(r.data) < MinRecordSize {
		return nil
	}
	n := int(r.data[0])
	if len(r.data) < n+MinRecordSize {
		return nil
	}
	return r.data[1 : 1+n]
}

// Checksum returns the checksum byte of the first message in the record.
func (r Record) Checksum() byte {
	if len(r.data) < MinRecordSize {
		return 0
	}
	n := int(r.data[0])
	if len(r.data) < n+MinRecordSize {
		return 0
	}
	return r.data[1+n]
}

// Parse validates a single message as received on the wire: the length
// byte must match the payload and the checksum must match the content.
func Parse(buf []byte) (Record, error) {
	if len(buf) < MinRecordSize {
		return Record{}, &Error{Kind: KindHeaderOrTrailerMissing}
	}
	if len(buf)-MinRecordSize > MaxPayloadSize {
		return Record{}, &Error{Kind: KindLengthOutOfBounds, Len: len(buf) - MinRecordSize}
	}

	received := buf[len(buf)-1]
	expected := Checksum(buf[:len(buf)-1])
	if received != expected {
		return Record{}, &Error{Kind: KindChecksumMismatch, Expected: expected, Received: received}
	}

	payloadLen := byte(len(buf) - MinRecordSize)
	if buf[0] != payloadLen {
		return Record{}, &Error{Kind: KindPayloadLenMismatch, Expected: buf[0], Received: payloadLen}
	}

	data := make([]byte, len(buf))
	copy(data, buf)
	return Record{data: data}, nil
}
