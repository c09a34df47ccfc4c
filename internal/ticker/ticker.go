// Package ticker drives the clock display: it republishes the current
// instant once per period until it is stopped.
package ticker

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"

	"github.com/firefly-engineering/worldclock/internal/logging"
)

// DefaultPeriod is the display refresh interval.
const DefaultPeriod = time.Second

// Driver captures a fresh instant on every tick and hands it to subscribers.
type Driver struct {
	clock  clockwork.Clock
	period time.Duration

	mu      sync.RWMutex
	current time.Time
	subs    []subscriber
	next    int
}

type subscriber struct {
	id int
	fn func(time.Time)
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock sets the time source. Tests pass a clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(d *Driver) {
		d.clock = c
	}
}

// WithPeriod overrides DefaultPeriod.
func WithPeriod(p time.Duration) Option {
	return func(d *Driver) {
		if p > 0 {
			d.period = p
		}
	}
}

// New creates a Driver. The current instant is read immediately so Current
// is meaningful before Run starts.
func New(opts ...Option) *Driver {
	d := &Driver{
		clock:  clockwork.NewRealClock(),
		period: DefaultPeriod,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.current = d.clock.Now()
	return d
}

// Period returns the tick interval.
func (d *Driver) Period() time.Duration {
	return d.period
}

// Current returns the most recently captured instant.
func (d *Driver) Current() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// Subscribe registers fn to receive every published instant. Callbacks run
// on the driver's goroutine, one at a time, in subscription order. They must
// not call the stop function returned by Start; cancel Run's context instead.
func (d *Driver) Subscribe(fn func(time.Time)) (unsubscribe func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.next++
	id := d.next
	d.subs = append(d.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.subs = lo.Reject(d.subs, func(s subscriber, _ int) bool { return s.id == id })
		})
	}
}

// Run captures the current instant, then publishes a fresh one on every
// tick. Each tick re-reads the clock, so ticks missed while the process was
// suspended are not replayed. Run blocks until ctx is cancelled and always
// stops its ticker before returning.
func (d *Driver) Run(ctx context.Context) error {
	log := logging.With("component", "ticker", "period", d.period)
	log.Debug("starting clock driver")

	d.mu.Lock()
	d.current = d.clock.Now()
	d.mu.Unlock()

	t := d.clock.NewTicker(d.period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("clock driver stopping")
			return ctx.Err()
		case <-t.Chan():
			// A tick and a cancellation can be ready together; teardown wins.
			if ctx.Err() != nil {
				log.Debug("clock driver stopping")
				return ctx.Err()
			}
			d.publish(d.clock.Now())
		}
	}
}

func (d *Driver) publish(now time.Time) {
	d.mu.Lock()
	d.current = now
	subs := append([]subscriber(nil), d.subs...)
	d.mu.Unlock()

	for _, s := range subs {
		s.fn(now)
	}
}

// Start runs the driver in the background. The returned stop function
// cancels it and waits for the loop to exit, so no subscriber is called
// once stop has returned. Stop may be called more than once.
func (d *Driver) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = d.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}
