// Package transporttest provides a scripted serial port for tests.
package transporttest

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/tapirbug/ibisibi/transport"
)

// ErrUnexpected is returned when the code under test deviates from the script.
var ErrUnexpected = errors.New("unexpected interaction with scripted port")

type stepKind int

const (
	stepWrite stepKind = iota
	stepRead
	stepTimeout
	stepReadError
)

type step struct {
	kind stepKind
	data []byte
	err  error
}

// Port is an io.ReadWriter that follows a fixed script of writes and reads.
// Every write must match the next expected write byte for byte; reads return
// the scripted data, split across calls when the caller's buffer is smaller.
// Any deviation is reported on t and answered with ErrUnexpected.
type Port struct {
	t       testing.TB
	mu      sync.Mutex
	steps   []step
	written [][]byte
}

// New returns an empty script bound to t.
func New(t testing.TB) *Port {
	return &Port{t: t}
}

// ExpectWrite appends an expected write of exactly b.
func (p *Port) ExpectWrite(b []byte) *Port {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps = append(p.steps, step{kind: stepWrite, data: append([]byte(nil), b...)})
	return p
}

// Receive appends data to be returned by the next reads.
func (p *Port) Receive(b ...byte) *Port {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps = append(p.steps, step{kind: stepRead, data: append([]byte(nil), b...)})
	return p
}

// TimeOut makes the next read fail with transport.ErrTimeout.
func (p *Port) TimeOut() *Port {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps = append(p.steps, step{kind: stepTimeout})
	return p
}

// FailRead makes the next read fail with err.
func (p *Port) FailRead(err error) *Port {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps = append(p.steps, step{kind: stepReadError, err: err})
	return p
}

// Read implements io.Reader.
func (p *Port) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.steps) == 0 {
		return 0, p.unexpected("read of %d bytes, but the script is finished", len(b))
	}

	next := &p.steps[0]
	switch next.kind {
	case stepTimeout:
		p.steps = p.steps[1:]
		return 0, transport.ErrTimeout
	case stepReadError:
		p.steps = p.steps[1:]
		return 0, next.err
	case stepRead:
		n := copy(b, next.data)
		next.data = next.data[n:]
		if len(next.data) == 0 {
			p.steps = p.steps[1:]
		}
		return n, nil
	default:
		return 0, p.unexpected("read of %d bytes, but expected write of % x", len(b), next.data)
	}
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.written = append(p.written, append([]byte(nil), b...))

	if len(p.steps) == 0 {
		return 0, p.unexpected("write of % x, but the script is finished", b)
	}

	next := p.steps[0]
	if next.kind != stepWrite {
		return 0, p.unexpected("write of % x, but expected a read", b)
	}
	if !bytes.Equal(next.data, b) {
		return 0, p.unexpected("write of % x, but expected % x", b, next.data)
	}

	p.steps = p.steps[1:]
	return len(b), nil
}

// Written returns every buffer passed to Write, in order.
func (p *Port) Written() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]byte, len(p.written))
	copy(out, p.written)
	return out
}

// Remaining returns the number of script steps not yet consumed.
func (p *Port) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

// AssertDone reports an error on t if part of the script was not consumed.
func (p *Port) AssertDone() {
	p.t.Helper()
	if n := p.Remaining(); n != 0 {
		p.t.Errorf("scripted port: %d steps were not consumed", n)
	}
}

func (p *Port) unexpected(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	p.t.Errorf("scripted port: unexpected %s", msg)
	return fmt.Errorf("%w: %s", ErrUnexpected, msg)
}
