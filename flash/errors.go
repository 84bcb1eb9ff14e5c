package flash

import (
	"errors"
	"fmt"
)

// Step names a step of the flash sequence.
type Step string

// Steps in the order they are performed.
const (
	StepReadDatabase  Step = "read database"
	StepSelectAddress Step = "select address"
	StepCheckStatus   Step = "check status"
	StepPrepareClear0 Step = "prepare clear 0"
	StepPrepareClear1 Step = "prepare clear 1"
	StepClear         Step = "clear"
	StepFinishClear0  Step = "finish clear 0"
	StepFinishClear1  Step = "finish clear 1"
	StepFlashChunk    Step = "flash chunk"
	StepFinishFlash0  Step = "finish flash 0"
	StepFinishFlash1  Step = "finish flash 1"
)

// Sentinel errors carried in Error.Err.
var (
	// ErrClear means the sign answered a clear query with something other than 'E'
	ErrClear = errors.New("unexpected response to clear")

	// ErrUnexpectedPrepareResponse means the second clear preparation was
	// answered with a valid record holding an unexpected payload
	ErrUnexpectedPrepareResponse = errors.New("unexpected response to clear preparation")

	// ErrUnexpectedRecordType means the database holds a record other than
	// data, or data after the end of file
	ErrUnexpectedRecordType = errors.New("unexpected record type in database")

	// ErrDatabaseTooLarge means the database does not fit the 16-bit write offset
	ErrDatabaseTooLarge = errors.New("database exceeds addressable size")
)

// Error reports the step at which flashing was aborted.
type Error struct {
	Step Step

	// Chunk is the zero-based chunk index for StepFlashChunk and
	// StepReadDatabase
	Chunk int

	// Response is the offending byte for ErrClear
	Response byte

	Err error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrClear):
		return fmt.Sprintf("flash: %s: sign answered 0x%02X instead of 'E'", e.Step, e.Response)
	case e.Step == StepFlashChunk:
		return fmt.Sprintf("flash: %s %d: %v", e.Step, e.Chunk, e.Err)
	case e.Step == StepReadDatabase:
		return fmt.Sprintf("flash: %s: record %d: %v", e.Step, e.Chunk, e.Err)
	default:
		return fmt.Sprintf("flash: %s: %v", e.Step, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
