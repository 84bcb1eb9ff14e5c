package sign

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tapirbug/ibisibi/ibis"
	"github.com/tapirbug/ibisibi/transport"
)

// ErrReplyTooLong is returned when a reply does not end within the
// configured maximum length.
var ErrReplyTooLong = errors.New("reply did not end in carriage return")

// Device is a sign found by Scan.
type Device struct {
	Address int
	Status  ibis.Status
}

// Sign sends IBIS telegrams over a port it does not own.
type Sign struct {
	port   io.ReadWriter
	config config
}

// New returns a Sign using port. It panics if port is nil.
func New(port io.ReadWriter, opts ...Option) *Sign {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sign{port: port, config: cfg}
}

// Switch shows destination index. With a non-nil line, the line number
// is sent first.
func (s *Sign) Switch(ctx context.Context, index int, line *int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if line != nil {
		t, err := ibis.Line(*line)
		if err != nil {
			return err
		}
		if err := s.write(t); err != nil {
			return fmt.Errorf("set line %d: %w", *line, err)
		}
		s.logDebug("line set", "line", *line)
	}

	t, err := ibis.Destination(index)
	if err != nil {
		return err
	}
	if err := s.write(t); err != nil {
		return fmt.Errorf("set destination %d: %w", index, err)
	}
	s.logDebug("destination set", "index", index)
	return nil
}

// Status queries the display status of the sign at address.
func (s *Sign) Status(ctx context.Context, address int) (ibis.Status, error) {
	if err := ctx.Err(); err != nil {
		return ibis.Status{}, err
	}

	t, err := ibis.DisplayStatus(address)
	if err != nil {
		return ibis.Status{}, err
	}
	if err := s.write(t); err != nil {
		return ibis.Status{}, fmt.Errorf("query status of address %d: %w", address, err)
	}

	buf := make([]byte, ibis.StatusResponseSize)
	if _, err := io.ReadFull(s.port, buf); err != nil {
		return ibis.Status{}, fmt.Errorf("read status of address %d: %w", address, err)
	}

	status, err := ibis.ParseStatusResponse(buf)
	if err != nil {
		return ibis.Status{}, fmt.Errorf("status of address %d: %w", address, err)
	}

	s.logDebug("status received", "address", address, "status", status)
	return status, nil
}

// Version queries the version text of the sign at address. The reply is
// read up to its carriage return and parity byte and returned without
// them.
func (s *Sign) Version(ctx context.Context, address int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	t, err := ibis.DisplayVersion(address)
	if err != nil {
		return "", err
	}
	if err := s.write(t); err != nil {
		return "", fmt.Errorf("query version of address %d: %w", address, err)
	}

	reply, err := s.readTelegram()
	if err != nil {
		return "", fmt.Errorf("read version of address %d: %w", address, err)
	}

	parsed, err := ibis.Parse(reply)
	if err != nil {
		return "", fmt.Errorf("version of address %d: %w", address, err)
	}

	version := string(parsed.Payload())
	s.logDebug("version received", "address", address, "version", version)
	return version, nil
}

// Scan queries the status of every address in order. Addresses that time
// out are skipped; any other error stops the scan.
func (s *Sign) Scan(ctx context.Context) ([]Device, error) {
	var found []Device
	for address := ibis.MinAddress; address <= ibis.MaxAddress; address++ {
		status, err := s.Status(ctx, address)
		switch {
		case err == nil:
			s.logInfo("device found", "address", address, "status", status)
			found = append(found, Device{Address: address, Status: status})
		case transport.IsTimeout(err):
			s.logDebug("no device", "address", address)
		default:
			return found, err
		}
	}
	return found, nil
}

// readTelegram reads byte by byte until a carriage return and the parity
// byte following it.
func (s *Sign) readTelegram() ([]byte, error) {
	buf := make([]byte, 0, 16)
	one := make([]byte, 1)
	for len(buf) < s.config.maxReply {
		if _, err := io.ReadFull(s.port, one); err != nil {
			return nil, err
		}
		buf = append(buf, one[0])
		if one[0] == ibis.CarriageReturn {
			if _, err := io.ReadFull(s.port, one); err != nil {
				return nil, err
			}
			return append(buf, one[0]), nil
		}
	}
	return nil, ErrReplyTooLong
}

func (s *Sign) write(t ibis.Telegram) error {
	_, err := s.port.Write(t.Bytes())
	return err
}

func (s *Sign) logDebug(msg string, kv ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Debug(msg, kv...)
	}
}

func (s *Sign) logInfo(msg string, kv ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Info(msg, kv...)
	}
}
