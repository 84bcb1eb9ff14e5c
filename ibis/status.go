package ibis

import "fmt"

// StatusKind is the category of a display status.
type StatusKind int

const (
	// StatusUncategorized is any status code without a known meaning
	StatusUncategorized StatusKind = iota

	// StatusOK is reported by idle displays ('3')
	StatusOK

	// StatusReadyForData has been observed right before flashing ('0')
	StatusReadyForData
)

// Status is the reading returned by a display status query. Only '0' and
// '3' have a known meaning, every other code is kept as Uncategorized.
type Status struct {
	Kind StatusKind
	Code byte
}

// StatusFromCode categorizes a status character as sent over the wire.
func StatusFromCode(code byte) Status {
	switch code {
	case StatusCharOK:
		return Status{Kind: StatusOK, Code: code}
	case StatusCharReadyForData:
		return Status{Kind: StatusReadyForData, Code: code}
	default:
		return Status{Kind: StatusUncategorized, Code: code}
	}
}

func (s Status) String() string {
	switch s.Kind {
	case StatusOK:
		return "ok"
	case StatusReadyForData:
		return "ready for data"
	default:
		return fmt.Sprintf("uncategorized (0x%02X)", s.Code)
	}
}

// ParseStatusResponse decodes the 4-byte response to DisplayStatus:
//
//	['a'][STATUS][CR][PARITY]
//
// Only the parity is verified; the status character is returned as is.
func ParseStatusResponse(buf []byte) (Status, error) {
	if len(buf) != StatusResponseSize {
		return Status{}, &Error{Kind: KindMalformed, Len: len(buf)}
	}

	t, err := Parse(buf)
	if err != nil {
		return Status{}, err
	}

	return StatusFromCode(t.data[1]), nil
}
