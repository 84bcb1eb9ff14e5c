package sign

// Logger is the key/value logger used by Sign.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type config struct {
	logger Logger

	// maxReply bounds the bytes read for a version reply
	maxReply int
}

func defaultConfig() config {
	return config{maxReply: 64}
}

// Option configures a Sign.
type Option func(*config)

// WithLogger sets the logger for sign operations.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxReply limits how many bytes Version reads while waiting for the
// end of a reply. Values below 3 are ignored.
func WithMaxReply(n int) Option {
	return func(c *config) {
		if n >= 3 {
			c.maxReply = n
		}
	}
}
