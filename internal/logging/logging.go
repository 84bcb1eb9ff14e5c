// Package logging sets up zerolog for the ibisibi command and adapts it to
// the key/value Logger interfaces of the library packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ParseLevel parses a level name such as "debug" or "warn".
// An empty string yields DefaultLevel.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		s = DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New creates a console logger writing to out at the given level.
// A nil out writes to stderr.
func New(level string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if out == nil {
		out = os.Stderr
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
