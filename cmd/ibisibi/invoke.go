package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tapirbug/ibisibi/cycle"
	"github.com/tapirbug/ibisibi/flash"
	"github.com/tapirbug/ibisibi/ihex"
	"github.com/tapirbug/ibisibi/internal/logging"
	"github.com/tapirbug/ibisibi/schedule"
	"github.com/tapirbug/ibisibi/sign"
	"github.com/tapirbug/ibisibi/transport"
)

// openPort opens serial, falling back to the configured port when it is
// empty.
func (a *app) openPort(serial string) (io.ReadWriteCloser, error) {
	if serial == "" {
		if err := a.cfg.RequireSerial(); err != nil {
			return nil, err
		}
		serial = a.cfg.Serial
	}

	a.log.Debug().Str("serial", serial).Msg("opening serial port")
	return a.open(serial)
}

func (a *app) withSign(serial string, fn func(s *sign.Sign) error) error {
	port, err := a.openPort(serial)
	if err != nil {
		return err
	}
	defer port.Close()

	return fn(sign.New(port, sign.WithLogger(logging.NewAdapter(a.log))))
}

func (a *app) list() error {
	ports, err := transport.List()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Fprintln(a.out, "No serial ports found.")
		return nil
	}
	for _, p := range ports {
		fmt.Fprintln(a.out, p)
	}
	return nil
}

func (a *app) scan(ctx context.Context, serial string) error {
	return a.withSign(serial, func(s *sign.Sign) error {
		devices, err := s.Scan(ctx)
		for _, d := range devices {
			fmt.Fprintf(a.out, "%d: %s\n", d.Address, d.Status)
		}
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Fprintln(a.out, "No display devices found.")
		}
		return nil
	})
}

func (a *app) status(ctx context.Context, serial string, address int) error {
	return a.withSign(serial, func(s *sign.Sign) error {
		status, err := s.Status(ctx, address)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d: %s\n", address, status)
		return nil
	})
}

func (a *app) version(ctx context.Context, serial string, address int) error {
	return a.withSign(serial, func(s *sign.Sign) error {
		version, err := s.Version(ctx, address)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d: %s\n", address, version)
		return nil
	})
}

func (a *app) destination(ctx context.Context, serial string, index int, line *int) error {
	return a.withSign(serial, func(s *sign.Sign) error {
		return s.Switch(ctx, index, line)
	})
}

// cycle runs until ctx is cancelled, which is not an error.
func (a *app) cycle(ctx context.Context, serial string, plans []schedule.Plan, interval, lookahead time.Duration) error {
	return a.withSign(serial, func(s *sign.Sign) error {
		scheduler, err := cycle.New(plans, interval, lookahead, s,
			cycle.WithLogger(logging.NewAdapter(a.log)),
		)
		if err != nil {
			return err
		}

		err = scheduler.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}

func (a *app) flash(ctx context.Context, serial string, address int, path string) error {
	db, err := ihex.Parse(path)
	if err != nil {
		return err
	}

	port, err := a.openPort(serial)
	if err != nil {
		return err
	}
	defer port.Close()

	f := flash.New(port,
		flash.WithLogger(logging.NewAdapter(a.log)),
		flash.WithProgressCallback(func(p flash.Progress) {
			a.log.Info().
				Str("phase", p.Phase).
				Int("chunk", p.Chunk).
				Int("chunks", p.TotalChunks).
				Str("offset", fmt.Sprintf("0x%04X", p.Offset)).
				Float64("percent", p.Percentage).
				Msg("flash progress")
		}),
	)
	if err := f.Flash(ctx, address, db); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Flashed %s to sign %d.\n", path, address)
	return nil
}
