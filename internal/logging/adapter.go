package logging

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Adapter implements the key/value Logger interfaces of the flash, cycle
// and sign packages on top of a zerolog.Logger.
type Adapter struct {
	logger zerolog.Logger
}

// NewAdapter wraps logger.
func NewAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// Debug logs a debug-level message.
func (a *Adapter) Debug(msg string, keysAndValues ...interface{}) {
	addFields(a.logger.Debug(), keysAndValues).Msg(msg)
}

// Info logs an info-level message.
func (a *Adapter) Info(msg string, keysAndValues ...interface{}) {
	addFields(a.logger.Info(), keysAndValues).Msg(msg)
}

// Warn logs a warning-level message.
func (a *Adapter) Warn(msg string, keysAndValues ...interface{}) {
	addFields(a.logger.Warn(), keysAndValues).Msg(msg)
}

// Error logs an error-level message.
func (a *Adapter) Error(msg string, keysAndValues ...interface{}) {
	addFields(a.logger.Error(), keysAndValues).Msg(msg)
}

// Logger returns the underlying zerolog.Logger.
func (a *Adapter) Logger() zerolog.Logger {
	return a.logger
}

// addFields adds alternating key/value pairs to event. A trailing key
// without value is logged under "!BADKEY".
func addFields(event *zerolog.Event, kv []interface{}) *zerolog.Event {
	for i := 0; i < len(kv); i += 2 {
		if i+1 >= len(kv) {
			event = event.Interface("!BADKEY", kv[i])
			break
		}
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		event = addField(event, key, kv[i+1])
	}
	return event
}

func addField(event *zerolog.Event, key string, value interface{}) *zerolog.Event {
	switch v := value.(type) {
	case string:
		return event.Str(key, v)
	case int:
		return event.Int(key, v)
	case int64:
		return event.Int64(key, v)
	case uint8:
		return event.Uint8(key, v)
	case uint16:
		return event.Uint16(key, v)
	case uint64:
		return event.Uint64(key, v)
	case float64:
		return event.Float64(key, v)
	case bool:
		return event.Bool(key, v)
	case time.Duration:
		return event.Dur(key, v)
	case time.Time:
		return event.Time(key, v)
	case error:
		return event.AnErr(key, v)
	case fmt.Stringer:
		return event.Stringer(key, v)
	default:
		return event.Interface(key, v)
	}
}
