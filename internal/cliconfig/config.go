package cliconfig

import (
	"fmt"
	"time"

	"github.com/tapirbug/ibisibi/cycle"
	"github.com/tapirbug/ibisibi/internal/logging"
)

// Defaults for settings without a flag, environment variable or file entry.
const (
	DefaultInterval  = 10 * time.Second
	DefaultLookahead = time.Duration(0)
)

// Config holds the settings shared by all ibisibi subcommands.
type Config struct {
	// Serial is the serial port the signs are attached to
	Serial string

	LogLevel string

	// Interval is the time between destination switches when cycling
	Interval time.Duration

	// Lookahead is how long before a slot starts its plan is shown
	Lookahead time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:  logging.DefaultLevel,
		Interval:  DefaultInterval,
		Lookahead: DefaultLookahead,
	}
}

// Validate checks the values that do not depend on the subcommand.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Interval < cycle.MinInterval {
		return fmt.Errorf("interval %s is shorter than %s", c.Interval, cycle.MinInterval)
	}
	if c.Lookahead < 0 {
		return fmt.Errorf("lookahead must not be negative")
	}
	return nil
}

// RequireSerial returns an error when no serial port is configured.
func (c *Config) RequireSerial() error {
	if c.Serial == "" {
		return fmt.Errorf("serial port is required: pass --serial, set %s or add serial to the config file", EnvSerial)
	}
	return nil
}

// configSetter applies values unless the corresponding flag was set on
// the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration if not empty and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
