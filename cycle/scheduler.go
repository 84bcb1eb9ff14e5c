package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/tapirbug/ibisibi/ibis"
	"github.com/tapirbug/ibisibi/schedule"
)

const (
	// RetryDelay is the wait after a failed switch and after a pass
	// without active plans.
	RetryDelay = 5 * time.Second

	// MinInterval is the shortest accepted time between switches.
	MinInterval = time.Second
)

// Switcher shows a destination, preceded by a line number when line is
// not nil. *sign.Sign implements it.
type Switcher interface {
	Switch(ctx context.Context, index int, line *int) error
}

// SwitchFunc adapts a function to Switcher.
type SwitchFunc func(ctx context.Context, index int, line *int) error

// Switch calls f.
func (f SwitchFunc) Switch(ctx context.Context, index int, line *int) error {
	return f(ctx, index, line)
}

// Scheduler cycles through the destinations of its plans.
type Scheduler struct {
	plans     []schedule.Plan
	interval  time.Duration
	lookahead time.Duration
	switcher  Switcher
	config    config
}

// New validates the arguments and returns a Scheduler. Plans must not be
// empty, every plan needs at least one destination in 0..999 and an
// optional line in 1..999, and interval must be at least MinInterval.
func New(plans []schedule.Plan, interval, lookahead time.Duration, switcher Switcher, opts ...Option) (*Scheduler, error) {
	if switcher == nil {
		return nil, &ConfigError{Field: "switcher", Reason: "must not be nil"}
	}
	if len(plans) == 0 {
		return nil, &ConfigError{Field: "plans", Reason: "at least one plan is required"}
	}
	if interval < MinInterval {
		return nil, &ConfigError{
			Field:  "interval",
			Reason: fmt.Sprintf("%s is shorter than %s", interval, MinInterval),
		}
	}
	if lookahead < 0 {
		return nil, &ConfigError{Field: "lookahead", Reason: "must not be negative"}
	}
	for i, plan := range plans {
		if err := validatePlan(plan); err != nil {
			return nil, &ConfigError{Field: fmt.Sprintf("plan %d", i+1), Reason: err.Error()}
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scheduler{
		plans:     plans,
		interval:  interval,
		lookahead: lookahead,
		switcher:  switcher,
		config:    cfg,
	}, nil
}

func validatePlan(plan schedule.Plan) error {
	if len(plan.Destinations) == 0 {
		return fmt.Errorf("no destinations")
	}
	if plan.Line != nil && (*plan.Line < ibis.MinLine || *plan.Line > ibis.MaxLine) {
		return fmt.Errorf("line %d outside %d-%d", *plan.Line, ibis.MinLine, ibis.MaxLine)
	}
	for _, r := range plan.Destinations {
		for _, end := range []int{r.From, r.To} {
			if end < ibis.MinDestination || end > ibis.MaxDestination {
				return fmt.Errorf("destination %d outside %d-%d", end, ibis.MinDestination, ibis.MaxDestination)
			}
		}
	}
	return nil
}

// Run cycles until ctx is cancelled and then returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	s.logInfo("cycle started",
		"plans", len(s.plans),
		"interval", s.interval,
		"lookahead", s.lookahead,
	)

	for {
		active, err := s.pass(ctx)
		if err != nil {
			s.logInfo("cycle stopped", "reason", err)
			return err
		}
		if active > 0 {
			continue
		}

		s.logDebug("no plan active", "retry_in", s.config.retryDelay)
		if err := s.config.sleep(ctx, s.config.retryDelay); err != nil {
			s.logInfo("cycle stopped", "reason", err)
			return err
		}
	}
}

// pass shows every destination of the plans active at the start of the
// pass and returns how many plans were active.
func (s *Scheduler) pass(ctx context.Context) (int, error) {
	now := s.config.now()

	var active []schedule.Plan
	for _, plan := range s.plans {
		if plan.IsActive(now, s.lookahead) {
			active = append(active, plan)
		}
	}

	for _, plan := range active {
		for _, index := range plan.Indexes() {
			if err := s.show(ctx, index, plan.Line); err != nil {
				return len(active), err
			}
			if err := s.config.sleep(ctx, s.interval); err != nil {
				return len(active), err
			}
		}
	}

	return len(active), nil
}

// show switches to index, retrying until it succeeds or ctx is done.
func (s *Scheduler) show(ctx context.Context, index int, line *int) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.switcher.Switch(ctx, index, line)
		if err == nil {
			s.logDebug("destination shown", "index", index, "line", lineValue(line))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.logError("switching destination failed",
			"index", index,
			"attempt", attempt,
			"retry_in", s.config.retryDelay,
			"error", err,
		)
		if err := s.config.sleep(ctx, s.config.retryDelay); err != nil {
			return err
		}
	}
}

func lineValue(line *int) interface{} {
	if line == nil {
		return "none"
	}
	return *line
}

func (s *Scheduler) logDebug(msg string, kv ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Debug(msg, kv...)
	}
}

func (s *Scheduler) logInfo(msg string, kv ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Info(msg, kv...)
	}
}

func (s *Scheduler) logError(msg string, kv ...interface{}) {
	if s.config.logger != nil {
		s.config.logger.Error(msg, kv...)
	}
}
