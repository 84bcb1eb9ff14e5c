// Package cycle keeps a sign switching between destinations according to
// a list of plans.
//
// Each pass evaluates every plan against the clock, then shows the
// destinations of the active plans in order, waiting the interval after
// each one. A failed switch is logged and retried after RetryDelay until
// it succeeds; destinations are never skipped. A pass without any active
// plan waits RetryDelay before the plans are evaluated again.
//
// Run only returns when its context is cancelled. Cancellation is
// noticed at every wait and before every switch.
//
//	s := sign.New(port)
//	c, err := cycle.New(plans, 10*time.Second, 5*time.Minute, s,
//	    cycle.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	err = c.Run(ctx) // context.Canceled after shutdown
package cycle
