package cycle

import (
	"context"
	"time"
)

// Logger is the key/value logger used by the Scheduler.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Clock returns the current time.
type Clock func() time.Time

// Sleeper waits for d or until ctx is done, whichever comes first. It
// returns ctx.Err() when interrupted.
type Sleeper func(ctx context.Context, d time.Duration) error

type config struct {
	logger     Logger
	now        Clock
	sleep      Sleeper
	retryDelay time.Duration
}

func defaultConfig() config {
	return config{
		now:        time.Now,
		sleep:      Sleep,
		retryDelay: RetryDelay,
	}
}

// Option configures a Scheduler.
type Option func(*config)

// WithLogger sets the logger for switches and retries.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock replaces time.Now for evaluating plan slots.
func WithClock(now Clock) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSleeper replaces the context-aware timer used for every wait.
func WithSleeper(sleep Sleeper) Option {
	return func(c *config) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithRetryDelay overrides RetryDelay. Non-positive values are ignored.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}

// Sleep waits for d unless ctx is done first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
