package cycle

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every *ConfigError.
var ErrInvalidConfig = errors.New("invalid cycle configuration")

// ConfigError is returned by New for arguments the scheduler cannot run
// with.
type ConfigError struct {
	// Field names the offending argument, e.g. "interval" or "plan 2"
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cycle: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
