package ibis

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// KindOutOfRange means a telegram factory received a value outside its domain
	KindOutOfRange ErrorKind = iota + 1

	// KindMalformed means a received telegram does not have the CR + parity trailer
	KindMalformed

	// KindParity means the received parity byte does not match the computed one
	KindParity
)

// Sentinel errors for use with errors.Is.
var (
	ErrOutOfRange = errors.New("value out of range")
	ErrMalformed  = errors.New("malformed telegram")
	ErrParity     = errors.New("parity mismatch")
)

// Error is returned by telegram factories and parsers.
type Error struct {
	Kind ErrorKind

	// Field names the rejected argument for KindOutOfRange
	Field string
	Value int
	Min   int
	Max   int

	// Expected and Received hold the parity bytes for KindParity
	Expected byte
	Received byte

	// Len is the length of the rejected buffer for KindMalformed
	Len int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindOutOfRange:
		return fmt.Sprintf("%s %d out of range %d-%d", e.Field, e.Value, e.Min, e.Max)
	case KindMalformed:
		return fmt.Sprintf("malformed telegram of %d bytes: expected CR followed by parity byte", e.Len)
	case KindParity:
		return fmt.Sprintf("corrupt telegram, found parity byte 0x%02X, expecting 0x%02X", e.Received, e.Expected)
	default:
		return "unknown telegram error"
	}
}

// Is reports whether target is the sentinel matching the error kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrOutOfRange:
		return e.Kind == KindOutOfRange
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrParity:
		return e.Kind == KindParity
	}
	return false
}

func outOfRange(field string, value, min, max int) error {
	return &Error{Kind: KindOutOfRange, Field: field, Value: value, Min: min, Max: max}
}
