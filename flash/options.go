package flash

// config holds the Flasher configuration.
type config struct {
	progress ProgressCallback
	logger   Logger
}

// Option configures a Flasher.
type Option func(*config)

// WithProgressCallback sets a function receiving progress updates.
//
// Example:
//
//	f := flash.New(port,
//	    flash.WithProgressCallback(func(p flash.Progress) {
//	        fmt.Printf("[%s] %.0f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *config) {
		c.progress = callback
	}
}

// WithLogger sets the logger for the flash steps.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
