package schedule

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// KindBlank means the input was empty
	KindBlank ErrorKind = iota + 1

	// KindMalformed means separators were misplaced or repeated
	KindMalformed

	// KindNumberFormat means a range endpoint was not an unsigned number
	KindNumberFormat

	// KindIncomplete means a slot lacked its end
	KindIncomplete

	// KindTooMuch means a slot or plan had too many parts
	KindTooMuch

	// KindDateFormat means a slot date could not be parsed
	KindDateFormat

	// KindFromAfterTo means a slot ends before it starts
	KindFromAfterTo

	// KindLine means the line prefix of a plan was not an unsigned number
	KindLine

	// KindRange means the range part of a plan was invalid; see Err
	KindRange

	// KindSlot means the slot part of a plan was invalid; see Err
	KindSlot
)

// Sentinel errors for use with errors.Is.
var (
	ErrBlank        = errors.New("blank input")
	ErrMalformed    = errors.New("malformed input")
	ErrNumberFormat = errors.New("invalid number")
	ErrIncomplete   = errors.New("incomplete time slot")
	ErrTooMuch      = errors.New("too many parts")
	ErrDateFormat   = errors.New("invalid date")
	ErrFromAfterTo  = errors.New("time slot ends before it starts")
	ErrLine         = errors.New("invalid line number")
	ErrRange        = errors.New("invalid destination range")
	ErrSlot         = errors.New("invalid time slot")
)

// ParseError is returned when parsing a Range, Slot or Plan fails.
type ParseError struct {
	// What names the value being parsed: "range", "slot" or "plan"
	What string

	Kind  ErrorKind
	Input string

	// Err is the underlying cause, if any
	Err error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindBlank:
		return fmt.Sprintf("could not parse blank string as a %s", e.What)
	case KindMalformed:
		return fmt.Sprintf("could not parse %q as a %s", e.Input, e.What)
	case KindNumberFormat:
		return fmt.Sprintf("could not parse %q as a number: %v", e.Input, e.Err)
	case KindIncomplete:
		return fmt.Sprintf("could not parse time slot from incomplete input %q", e.Input)
	case KindTooMuch:
		return fmt.Sprintf("%s %q has too many parts", e.What, e.Input)
	case KindDateFormat:
		return fmt.Sprintf("could not parse time in time slot %q: %v", e.Input, e.Err)
	case KindFromAfterTo:
		return fmt.Sprintf("time slot %q ends before it starts", e.Input)
	case KindLine:
		return fmt.Sprintf("could not parse line number in plan %q: %v", e.Input, e.Err)
	case KindRange, KindSlot:
		return fmt.Sprintf("plan %q: %v", e.Input, e.Err)
	default:
		return fmt.Sprintf("could not parse %s %q", e.What, e.Input)
	}
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching the error kind.
func (e *ParseError) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(kind ErrorKind) error {
	switch kind {
	case KindBlank:
		return ErrBlank
	case KindMalformed:
		return ErrMalformed
	case KindNumberFormat:
		return ErrNumberFormat
	case KindIncomplete:
		return ErrIncomplete
	case KindTooMuch:
		return ErrTooMuch
	case KindDateFormat:
		return ErrDateFormat
	case KindFromAfterTo:
		return ErrFromAfterTo
	case KindLine:
		return ErrLine
	case KindRange:
		return ErrRange
	case KindSlot:
		return ErrSlot
	}
	return nil
}
