package transport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Line settings used by IBIS displays. They are fixed by the protocol and
// not user-tunable.
const (
	BaudRate    = 1200
	DataBits    = 7
	ReadTimeout = 3 * time.Second
)

// ErrTimeout is returned by Port.Read when no byte arrived within ReadTimeout.
var ErrTimeout = errors.New("serial read timed out")

// IsTimeout reports whether err was caused by a read timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// Mode returns the serial line settings: 1200 baud, 7 data bits, even
// parity, 2 stop bits.
func Mode() *serial.Mode {
	return &serial.Mode{
		BaudRate: BaudRate,
		DataBits: DataBits,
		Parity:   serial.EvenParity,
		StopBits: serial.TwoStopBits,
	}
}

// Port is an open serial port configured for IBIS. It implements
// io.ReadWriteCloser; a read that times out returns ErrTimeout instead of
// zero bytes.
type Port struct {
	port serial.Port
	name string
}

// Open opens the named serial port, e.g. /dev/ttyUSB0 or COM5.
func Open(name string) (*Port, error) {
	port, err := serial.Open(name, Mode())
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}

	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
	}

	return &Port{port: port, name: name}, nil
}

// Name returns the name the port was opened with.
func (p *Port) Name() string {
	return p.name
}

// Read reads up to len(b) bytes. It blocks for at most ReadTimeout.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if err != nil {
		return n, fmt.Errorf("read %s: %w", p.name, err)
	}
	if n == 0 && len(b) > 0 {
		return 0, fmt.Errorf("read %s: %w", p.name, ErrTimeout)
	}
	return n, nil
}

// Write writes b to the port.
func (p *Port) Write(b []byte) (int, error) {
	n, err := p.port.Write(b)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", p.name, err)
	}
	return n, nil
}

// Close closes the port.
func (p *Port) Close() error {
	return p.port.Close()
}

var _ io.ReadWriteCloser = (*Port)(nil)
