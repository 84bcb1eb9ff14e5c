package flash

import "time"

// Phases reported through Progress.Phase.
const (
	PhaseSelecting = "selecting"
	PhaseChecking  = "checking"
	PhaseClearing  = "clearing"
	PhaseFlashing  = "flashing"
	PhaseFinishing = "finishing"
	PhaseComplete  = "complete"
)

// Progress describes how far flashing has come.
type Progress struct {
	// Phase is one of the Phase constants
	Phase string

	// Chunk is the number of database chunks acknowledged so far
	Chunk int

	// TotalChunks is the number of database chunks to send
	TotalChunks int

	// Offset is the database offset of the next chunk
	Offset int

	// BytesWritten counts database bytes acknowledged by the sign
	BytesWritten int

	// Percentage is the completion estimate from 0 to 100
	Percentage float64

	ElapsedTime time.Duration
}

// ProgressCallback receives progress updates. It runs on the flashing
// goroutine and should return quickly.
type ProgressCallback func(Progress)

// Logger is the key/value logger used by the Flasher.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
