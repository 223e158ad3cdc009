// Package timer implements the study countdown.
package timer

import (
	"errors"
	"sync"
	"time"
)

// ErrNotSet is returned by Start when no time is left on the countdown.
var ErrNotSet = errors.New("timer: no duration set")

// step is the time removed from the countdown on every tick.
const step = time.Second

// Countdown counts down in one-second steps. At most one ticker goroutine is
// attached at any time: Set, Pause and Reset detach the running one before
// changing state. A Countdown is safe for concurrent use.
type Countdown struct {
	mu        sync.Mutex
	remaining time.Duration
	run       *ticker
	done      chan struct{}
	interval  time.Duration
	onTick    func(remaining time.Duration)
}

type ticker struct {
	stop   chan struct{}
	exited chan struct{}
	// inTick is set while the ticker goroutine runs onTick. Guarded by mu.
	inTick bool
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithInterval sets the wall-clock time between steps. Defaults to one second.
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) { c.interval = d }
}

// WithOnTick registers a callback invoked after every step with the time left.
func WithOnTick(fn func(remaining time.Duration)) Option {
	return func(c *Countdown) { c.onTick = fn }
}

// New returns a stopped countdown with no time on it.
func New(opts ...Option) *Countdown {
	c := &Countdown{
		interval: step,
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Set stops the countdown and puts minutes on it.
func (c *Countdown) Set(minutes int) error {
	if minutes < 1 {
		return errors.New("timer: minutes must be positive")
	}
	c.SetDuration(time.Duration(minutes) * time.Minute)
	return nil
}

// SetDuration stops the countdown and puts d on it, rounded down to whole steps.
func (c *Countdown) SetDuration(d time.Duration) {
	c.mu.Lock()
	old := c.detachLocked()
	c.remaining = d.Truncate(step)
	c.done = make(chan struct{})
	c.mu.Unlock()

	old.wait()
}

// Start resumes counting down. Starting a running countdown does nothing.
func (c *Countdown) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.run != nil {
		return nil
	}
	if c.remaining <= 0 {
		return ErrNotSet
	}

	t := &ticker{stop: make(chan struct{}), exited: make(chan struct{})}
	c.run = t
	go c.loop(t, c.done)
	return nil
}

// Pause stops counting down and keeps the time left.
func (c *Countdown) Pause() {
	c.mu.Lock()
	old := c.detachLocked()
	c.mu.Unlock()

	old.wait()
}

// Reset stops the countdown and clears it.
func (c *Countdown) Reset() {
	c.SetDuration(0)
}

// Remaining returns the time left.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether a ticker is attached.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run != nil
}

// Done returns a channel closed when the current duration runs out.
// Set and Reset replace the channel.
func (c *Countdown) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// detachLocked stops the attached ticker and returns it for waiting. A ticker
// caught inside onTick is not returned: the callback may be the caller, and
// the goroutine returns without touching state once the callback ends.
func (c *Countdown) detachLocked() *ticker {
	t := c.run
	if t == nil {
		return nil
	}
	close(t.stop)
	c.run = nil
	if t.inTick {
		return nil
	}
	return t
}

func (t *ticker) wait() {
	if t != nil {
		<-t.exited
	}
}

func (c *Countdown) loop(t *ticker, done chan struct{}) {
	defer close(t.exited)

	tk := time.NewTicker(c.interval)
	defer tk.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
		}

		c.mu.Lock()
		select {
		case <-t.stop:
			c.mu.Unlock()
			return
		default:
		}

		c.remaining -= step
		if c.remaining < 0 {
			c.remaining = 0
		}
		left := c.remaining
		finished := left == 0
		if finished {
			c.run = nil
			close(done)
		}
		if c.onTick == nil {
			c.mu.Unlock()
			if finished {
				return
			}
			continue
		}
		t.inTick = true
		c.mu.Unlock()

		c.onTick(left)

		c.mu.Lock()
		t.inTick = false
		c.mu.Unlock()
		if finished {
			return
		}
	}
}
