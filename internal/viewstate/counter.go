package viewstate

import (
	"math"
	"strconv"
	"sync"
	"time"
)

const (
	// TickRate is the number of counter updates per second.
	TickRate = 60
	// VisibilityThreshold is the fraction of a counter that must be in the
	// viewport before it starts.
	VisibilityThreshold = 0.5
)

// TickInterval is the delay between two counter updates.
const TickInterval = time.Second / TickRate

// CounterPhase is the state of an animated counter.
//
//	Idle --(visible)--> Animating --(target reached)--> Settled
//
// Animating and Settled never return to Idle.
type CounterPhase int

const (
	CounterIdle CounterPhase = iota
	CounterAnimating
	CounterSettled
)

func (p CounterPhase) String() string {
	switch p {
	case CounterIdle:
		return "idle"
	case CounterAnimating:
		return "animating"
	case CounterSettled:
		return "settled"
	}
	return "CounterPhase(" + strconv.Itoa(int(p)) + ")"
}

// VisibilityObserver watches one element and reports the visible fraction of
// its area whenever it crosses threshold. The returned function stops the
// watch and must be idempotent.
type VisibilityObserver interface {
	Observe(threshold float64, fn func(ratio float64)) (disconnect func())
}

// CounterSpec describes one statistic.
type CounterSpec struct {
	Target          float64
	DurationSeconds float64
	Suffix          string
}

// Counter animates a number from 0 to its target the first time it becomes
// visible, then stays settled.
type Counter struct {
	mu sync.Mutex

	spec      CounterSpec
	increment float64
	sched     Scheduler
	render    func(value float64)

	phase      CounterPhase
	running    float64
	value      float64
	disconnect func()
	cancel     func()
	closed     bool
}

// NewCounter returns an idle counter. A negative target is treated as 0 and
// a non-positive duration settles on the first tick.
func NewCounter(spec CounterSpec, sched Scheduler, render func(value float64)) *Counter {
	if spec.Target < 0 {
		spec.Target = 0
	}
	inc := spec.Target
	if spec.DurationSeconds > 0 {
		inc = spec.Target / (spec.DurationSeconds * TickRate)
	}
	return &Counter{spec: spec, increment: inc, sched: sched, render: render}
}

// ObserveCounter creates a counter and registers its visibility watcher.
func ObserveCounter(obs VisibilityObserver, spec CounterSpec, sched Scheduler, render func(value float64)) *Counter {
	c := NewCounter(spec, sched, render)
	c.Observe(obs)
	return c
}

// Observe registers the visibility watcher, replacing any earlier one.
func (c *Counter) Observe(obs VisibilityObserver) {
	disconnect := obs.Observe(VisibilityThreshold, c.Visible)

	c.mu.Lock()
	prev := c.disconnect
	if c.closed || c.phase == CounterSettled {
		c.mu.Unlock()
		disconnect()
		if prev != nil {
			prev()
		}
		return
	}
	c.disconnect = disconnect
	c.mu.Unlock()

	if prev != nil {
		prev()
	}
}

// Visible feeds a visibility notification. Only the first notification at
// or above the threshold starts the animation.
func (c *Counter) Visible(ratio float64) {
	c.mu.Lock()
	if c.closed || c.phase != CounterIdle || ratio < VisibilityThreshold {
		c.mu.Unlock()
		return
	}
	c.phase = CounterAnimating
	c.mu.Unlock()

	cancel := c.sched.Every(TickInterval, c.tick)

	c.mu.Lock()
	if c.closed || c.phase == CounterSettled {
		c.mu.Unlock()
		cancel()
		return
	}
	c.cancel = cancel
	c.mu.Unlock()
}

func (c *Counter) tick() {
	c.mu.Lock()
	if c.closed || c.phase != CounterAnimating {
		c.mu.Unlock()
		return
	}

	c.running += c.increment
	var release []func()
	if c.running >= c.spec.Target {
		c.value = c.spec.Target
		c.phase = CounterSettled
		release = c.releaseLocked()
	} else {
		c.value = math.Floor(c.running*10) / 10
	}
	value := c.value
	render := c.render
	c.mu.Unlock()

	for _, fn := range release {
		fn()
	}
	if render != nil {
		render(value)
	}
}

// releaseLocked detaches the timer and the watcher and returns the functions
// to call once the lock is dropped.
func (c *Counter) releaseLocked() []func() {
	var fns []func()
	if c.cancel != nil {
		fns = append(fns, c.cancel)
		c.cancel = nil
	}
	if c.disconnect != nil {
		fns = append(fns, c.disconnect)
		c.disconnect = nil
	}
	return fns
}

// Close releases the visibility watcher and any running timer. The counter
// keeps its last value.
func (c *Counter) Close() {
	c.mu.Lock()
	c.closed = true
	release := c.releaseLocked()
	c.mu.Unlock()

	for _, fn := range release {
		fn()
	}
}

// Phase returns the current state.
func (c *Counter) Phase() CounterPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Value returns the displayed value.
func (c *Counter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Text returns the displayed value with its suffix.
func (c *Counter) Text() string {
	return FormatCounter(c.Value(), c.spec.Suffix)
}

// FormatCounter renders a counter value the way the page displays it.
func FormatCounter(value float64, suffix string) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + suffix
}
