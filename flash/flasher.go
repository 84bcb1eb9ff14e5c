package flash

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tapirbug/ibisibi/ibis"
	"github.com/tapirbug/ibisibi/ihex"
	"github.com/tapirbug/ibisibi/record"
	"github.com/tapirbug/ibisibi/sign"
)

// Offsets of consecutive chunks differ by ChunkStride, whatever the
// length of the chunk content.
const ChunkStride = 0x20

// Repetitions of the fixed queries.
const (
	clearRepeat        = 4
	finishFlash1Repeat = 4
)

// prepareClear1Reply is the payload the sign answers PrepareClear1 with.
var prepareClear1Reply = []byte{0x57}

// Flasher replaces the database of a BS210 sign.
//
// A Flasher holds no state between calls, but the port must not be used
// by anything else while Flash runs.
type Flasher struct {
	port   io.ReadWriter
	sign   *sign.Sign
	config config
}

// New creates a Flasher talking to the sign over port. It panics if port
// is nil.
//
// Example:
//
//	port, _ := transport.Open("/dev/ttyUSB0")
//	f := flash.New(port, flash.WithLogger(logger))
func New(port io.ReadWriter, opts ...Option) *Flasher {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Flasher{
		port:   port,
		sign:   sign.New(port),
		config: cfg,
	}
}

// Flash clears the database of the sign at address and writes db to it:
//  1. Select the address of the sign
//  2. Query its status as a sanity check
//  3. Clear the database
//  4. Write every data record of db as a chunk, 0x20 bytes apart
//  5. Finish flashing
//
// db may only contain data records followed by an optional end of file
// record; it is checked before anything is sent. Any unexpected response
// aborts with an *Error naming the step. Nothing is retried.
//
// The context is checked between steps.
func (f *Flasher) Flash(ctx context.Context, address int, db *ihex.File) error {
	if db == nil {
		return fmt.Errorf("database cannot be nil")
	}

	chunks, err := f.chunks(db)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	progress := func(p Progress) {
		p.TotalChunks = len(chunks)
		p.ElapsedTime = time.Since(start)
		f.reportProgress(p)
	}

	progress(Progress{Phase: PhaseSelecting})
	if err := f.selectAddress(address); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress(Progress{Phase: PhaseChecking, Percentage: 2})
	if err := f.checkStatus(ctx, address); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress(Progress{Phase: PhaseClearing, Percentage: 5})
	if err := f.clearDatabase(ctx); err != nil {
		return err
	}

	bytesWritten := 0
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		f.logDebug("flashing chunk",
			"chunk", i,
			"len", len(chunk.Content()),
			"offset", fmt.Sprintf("0x%04X", chunk.Address()),
		)
		if err := f.write(StepFlashChunk, chunk.Bytes()); err != nil {
			return withChunk(err, i)
		}
		if err := f.expectAck(StepFlashChunk); err != nil {
			return withChunk(err, i)
		}

		bytesWritten += len(chunk.Content())
		progress(Progress{
			Phase:        PhaseFlashing,
			Chunk:        i + 1,
			Offset:       (i + 1) * ChunkStride,
			BytesWritten: bytesWritten,
			Percentage:   10 + float64(i+1)/float64(len(chunks))*85,
		})
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress(Progress{
		Phase:        PhaseFinishing,
		Chunk:        len(chunks),
		Offset:       len(chunks) * ChunkStride,
		BytesWritten: bytesWritten,
		Percentage:   97,
	})
	if err := f.finish(); err != nil {
		return err
	}

	progress(Progress{
		Phase:        PhaseComplete,
		Chunk:        len(chunks),
		Offset:       len(chunks) * ChunkStride,
		BytesWritten: bytesWritten,
		Percentage:   100,
	})
	f.logInfo("flashing complete",
		"address", address,
		"chunks", len(chunks),
		"bytes", bytesWritten,
		"elapsed", time.Since(start),
	)
	return nil
}

// chunks turns the data records of db into database chunks at
// consecutive offsets.
func (f *Flasher) chunks(db *ihex.File) ([]record.DatabaseChunk, error) {
	var (
		chunks []record.DatabaseChunk
		eof    bool
	)

	for i, rec := range db.Records {
		if eof || rec.Type != ihex.Data {
			if !eof && rec.Type == ihex.EndOfFile {
				eof = true
				continue
			}
			return nil, &Error{
				Step:  StepReadDatabase,
				Chunk: i,
				Err:   fmt.Errorf("%w: %s", ErrUnexpectedRecordType, rec.Type),
			}
		}

		offset := len(chunks) * ChunkStride
		if offset > 0xFFFF {
			return nil, &Error{Step: StepReadDatabase, Chunk: i, Err: ErrDatabaseTooLarge}
		}

		chunk, err := record.NewDatabaseChunk(uint16(offset), rec.Data)
		if err != nil {
			return nil, &Error{Step: StepReadDatabase, Chunk: i, Err: err}
		}
		chunks = append(chunks, chunk)
	}

	if !eof {
		f.logWarn("no end of file record in database, ignoring")
	}
	return chunks, nil
}

func (f *Flasher) selectAddress(address int) error {
	t, err := ibis.BSSelectAddress(address)
	if err != nil {
		return &Error{Step: StepSelectAddress, Err: err}
	}

	f.logDebug("selecting address", "address", address)
	return f.write(StepSelectAddress, t.Bytes())
}

func (f *Flasher) checkStatus(ctx context.Context, address int) error {
	status, err := f.sign.Status(ctx, address)
	if err != nil {
		return &Error{Step: StepCheckStatus, Err: err}
	}

	f.logDebug("device status before flashing", "address", address, "status", status)
	return nil
}

func (f *Flasher) clearDatabase(ctx context.Context) error {
	f.logDebug("preparing clearing (1/2)")
	if err := f.write(StepPrepareClear0, record.PrepareClear0().Bytes()); err != nil {
		return err
	}
	if err := f.expectAck(StepPrepareClear0); err != nil {
		return err
	}

	f.logDebug("preparing clearing (2/2)")
	if err := f.write(StepPrepareClear1, record.PrepareClear1().Bytes()); err != nil {
		return err
	}
	reply := make([]byte, 4)
	if err := f.read(StepPrepareClear1, reply); err != nil {
		return err
	}
	payload, err := record.ResponsePayload(reply)
	if err != nil {
		return &Error{Step: StepPrepareClear1, Err: err}
	}
	if !bytes.Equal(payload, prepareClear1Reply) {
		return &Error{
			Step: StepPrepareClear1,
			Err:  fmt.Errorf("%w: % X", ErrUnexpectedPrepareResponse, payload),
		}
	}

	for i := 0; i < clearRepeat; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		f.logDebug("clearing", "round", i+1, "of", clearRepeat)
		if err := f.write(StepClear, record.Clear().Bytes()); err != nil {
			return err
		}
		reply := make([]byte, 1)
		if err := f.read(StepClear, reply); err != nil {
			return err
		}
		if reply[0] != record.ClearAck {
			return &Error{Step: StepClear, Response: reply[0], Err: ErrClear}
		}
	}

	f.logDebug("finishing clearing (1/2)")
	if err := f.write(StepFinishClear0, record.FinishClear0().Bytes()); err != nil {
		return err
	}
	if err := f.expectAck(StepFinishClear0); err != nil {
		return err
	}

	f.logDebug("finishing clearing (2/2)")
	if err := f.write(StepFinishClear1, record.FinishClear1().Bytes()); err != nil {
		return err
	}
	return f.expectAck(StepFinishClear1)
}

func (f *Flasher) finish() error {
	f.logDebug("finishing flashing (1/2)")
	if err := f.write(StepFinishFlash0, record.FinishFlash0().Bytes()); err != nil {
		return err
	}
	if err := f.expectAck(StepFinishFlash0); err != nil {
		return err
	}

	// The sign does not answer the last step.
	f.logDebug("finishing flashing (2/2)")
	for i := 0; i < finishFlash1Repeat; i++ {
		if err := f.write(StepFinishFlash1, record.FinishFlash1().Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flasher) expectAck(step Step) error {
	reply := make([]byte, 1)
	if err := f.read(step, reply); err != nil {
		return err
	}
	if err := record.VerifyAck(reply); err != nil {
		return &Error{Step: step, Response: reply[0], Err: err}
	}
	return nil
}

func (f *Flasher) write(step Step, b []byte) error {
	if _, err := f.port.Write(b); err != nil {
		return &Error{Step: step, Err: fmt.Errorf("write: %w", err)}
	}
	return nil
}

func (f *Flasher) read(step Step, buf []byte) error {
	if _, err := io.ReadFull(f.port, buf); err != nil {
		return &Error{Step: step, Err: fmt.Errorf("read: %w", err)}
	}
	return nil
}

func withChunk(err error, chunk int) error {
	if e, ok := err.(*Error); ok {
		e.Chunk = chunk
	}
	return err
}

func (f *Flasher) reportProgress(p Progress) {
	if f.config.progress != nil {
		f.config.progress(p)
	}
}

func (f *Flasher) logDebug(msg string, kv ...interface{}) {
	if f.config.logger != nil {
		f.config.logger.Debug(msg, kv...)
	}
}

func (f *Flasher) logInfo(msg string, kv ...interface{}) {
	if f.config.logger != nil {
		f.config.logger.Info(msg, kv...)
	}
}

func (f *Flasher) logWarn(msg string, kv ...interface{}) {
	if f.config.logger != nil {
		f.config.logger.Warn(msg, kv...)
	}
}
