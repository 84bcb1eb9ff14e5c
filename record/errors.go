package record

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// KindLengthOutOfBounds means a payload does not fit into a length byte
	KindLengthOutOfBounds ErrorKind = iota + 1

	// KindMagicNumberMissing means a response is empty or does not start with Ack
	KindMagicNumberMissing

	// KindNotAcknowledgement means a plain ack was expected but more bytes arrived
	KindNotAcknowledgement

	// KindHeaderOrTrailerMissing means a response is too short to hold a record
	KindHeaderOrTrailerMissing

	// KindChecksumMismatch means the received checksum does not match the content
	KindChecksumMismatch

	// KindPayloadLenMismatch means the length byte disagrees with the payload
	KindPayloadLenMismatch
)

// Sentinel errors for use with errors.Is.
var (
	ErrRecordLengthOutOfBounds = errors.New("record length out of bounds")
	ErrMagicNumberMissing      = errors.New("response lacks magic number")
	ErrNotAcknowledgement      = errors.New("acknowledgement expected but got complex response")
	ErrHeaderOrTrailerMissing  = errors.New("response missing header or trailer")
	ErrChecksumMismatch        = errors.New("checksum mismatch")
	ErrPayloadLenMismatch      = errors.New("payload length mismatch")
)

// Error is returned when building records or verifying responses from a sign.
type Error struct {
	Kind ErrorKind

	// Expected and Received hold checksums or length bytes for the mismatch kinds
	Expected byte
	Received byte

	// Len is the offending length for KindLengthOutOfBounds
	Len int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLengthOutOfBounds:
		return fmt.Sprintf("record length out of bounds: %d bytes, maximum is %d", e.Len, MaxPayloadSize)
	case KindMagicNumberMissing:
		return "response from sign corrupt, lacking magic number"
	case KindNotAcknowledgement:
		return "acknowledgement expected but got complex response from sign"
	case KindHeaderOrTrailerMissing:
		return "response from sign is too short, missing header, trailer, or both"
	case KindChecksumMismatch:
		return fmt.Sprintf("response from sign corrupt, expected checksum 0x%02X, got 0x%02X", e.Expected, e.Received)
	case KindPayloadLenMismatch:
		return fmt.Sprintf("response from sign corrupt, expected record length 0x%02X, got 0x%02X", e.Expected, e.Received)
	default:
		return "unknown record error"
	}
}

// Is reports whether target is the sentinel matching the error kind.
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(kind ErrorKind) error {
	switch kind {
	case KindLengthOutOfBounds:
		return ErrRecordLengthOutOfBounds
	case KindMagicNumberMissing:
		return ErrMagicNumberMissing
	case KindNotAcknowledgement:
		return ErrNotAcknowledgement
	case KindHeaderOrTrailerMissing:
		return ErrHeaderOrTrailerMissing
	case KindChecksumMismatch:
		return ErrChecksumMismatch
	case KindPayloadLenMismatch:
		return ErrPayloadLenMismatch
	}
	return nil
}
