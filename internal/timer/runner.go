package timer

import (
	"context"
	"time"
)

// Tickable is the clock-advance surface shared by both timer machines.
type Tickable interface {
	Tick()
}

// Runner drives a timer machine from a wall-clock ticker. One Runner drives
// one machine; construct a new Runner per brew session.
type Runner struct {
	interval time.Duration
	onTick   func()
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithInterval overrides the tick interval. The machines count in tenths of
// a second, so intervals other than 100ms change the timer's real-time rate.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithOnTick registers a callback invoked after every tick, typically a
// display refresh.
func WithOnTick(fn func()) RunnerOption {
	return func(r *Runner) { r.onTick = fn }
}

// NewRunner builds a Runner with a 100ms default interval.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{interval: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks the machine until the context is cancelled or until stop reports
// true after a tick. Passing a nil stop runs until cancellation.
func (r *Runner) Run(ctx context.Context, m Tickable, stop func() bool) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Tick()
			if r.onTick != nil {
				r.onTick()
			}
			if stop != nil && stop() {
				return nil
			}
		}
	}
}
