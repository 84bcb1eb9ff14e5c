package record

// VerifyAck checks that a response is exactly the single ack byte 0x4F.
func VerifyAck(buf []byte) error {
	if len(buf) == 0 || buf[0] != Ack {
		return &Error{Kind: KindMagicNumberMissing}
	}
	if len(buf) != 1 {
		return &Error{Kind: KindNotAcknowledgement}
	}
	return nil
}

// ResponsePayload validates a response of the form:
//
//	[0x4F][LEN][PAYLOAD...][CHECKSUM]
//
// and returns the payload. The returned slice aliases buf.
func ResponsePayload(buf []byte) ([]byte, error) {
	if len(buf) == 0 || buf[0] != Ack {
		return nil, &Error{Kind: KindMagicNumberMissing}
	}

	rec := buf[1:]
	if len(rec) < MinRecordSize {
		return nil, &Error{Kind: KindHeaderOrTrailerMissing}
	}

	received := rec[len(rec)-1]
	rec = rec[:len(rec)-1]
	expected := Checksum(rec)
	if received != expected {
		return nil, &Error{Kind: KindChecksumMismatch, Expected: expected, Received: received}
	}

	declared := rec[0]
	payload := rec[1:]
	if len(payload) > MaxPayloadSize {
		return nil, &Error{Kind: KindLengthOutOfBounds, Len: len(payload)}
	}
	if byte(len(payload)) != declared {
		return nil, &Error{Kind: KindPayloadLenMismatch, Expected: declared, Received: byte(len(payload))}
	}

	return payload, nil
}
