package transport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.bug.st/serial"
)

func TestMode(t *testing.T) {
	m := Mode()
	assert.Equal(t, 1200, m.BaudRate)
	assert.Equal(t, 7, m.DataBits)
	assert.Equal(t, serial.EvenParity, m.Parity)
	assert.Equal(t, serial.TwoStopBits, m.StopBits)
}

type deadlineError struct{}

func (deadlineError) Error() string { return "deadline exceeded" }
func (deadlineError) Timeout() bool { return true }

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrTimeout, true},
		{"wrapped sentinel", fmt.Errorf("read /dev/ttyUSB0: %w", ErrTimeout), true},
		{"timeout interface", fmt.Errorf("status: %w", deadlineError{}), true},
		{"other error", errors.New("device unplugged"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeout(tt.err))
		})
	}
}

func TestPortInfoString(t *testing.T) {
	assert.Equal(t, "/dev/ttyS0", PortInfo{Name: "/dev/ttyS0"}.String())
	assert.Equal(t,
		"/dev/ttyUSB0 (USB 0403:6001 FT232R serial A50285BI)",
		PortInfo{
			Name:         "/dev/ttyUSB0",
			IsUSB:        true,
			VID:          "0403",
			PID:          "6001",
			Product:      "FT232R",
			SerialNumber: "A50285BI",
		}.String())
}
