package viewstate

import (
	"errors"
	"time"
)

type fakeDocument struct {
	dark    bool
	applied int
}

func (d *fakeDocument) SetDark(dark bool) {
	d.dark = dark
	d.applied++
}

type fakeScheme struct {
	dark bool
	err  error
}

func (s fakeScheme) PrefersDark() (bool, error) { return s.dark, s.err }

// brokenStore simulates storage disabled by the browser.
type brokenStore struct {
	getErr, setErr error
	sets           int
}

func (s *brokenStore) Get(string) (string, error) { return "", s.getErr }

func (s *brokenStore) Set(string, string) error {
	s.sets++
	return s.setErr
}

var errDisabled = errors.New("storage disabled")

type fakeSignal struct {
	listeners map[int]func()
	next      int
	stops     int
}

func newFakeSignal() *fakeSignal {
	return &fakeSignal{listeners: make(map[int]func())}
}

func (s *fakeSignal) Listen(fn func()) func() {
	id := s.next
	s.next++
	s.listeners[id] = fn
	return func() {
		if _, ok := s.listeners[id]; ok {
			delete(s.listeners, id)
			s.stops++
		}
	}
}

func (s *fakeSignal) fire() {
	for _, fn := range s.listeners {
		fn()
	}
}

type fakeViewport struct {
	metrics Metrics
	rects   map[SectionID]Rect
}

func (v *fakeViewport) Metrics() Metrics { return v.metrics }

func (v *fakeViewport) SectionRect(id SectionID) (Rect, bool) {
	r, ok := v.rects[id]
	return r, ok
}

type fakeObserver struct {
	fn           func(float64)
	threshold    float64
	disconnected int
}

func (o *fakeObserver) Observe(threshold float64, fn func(float64)) func() {
	o.threshold = threshold
	o.fn = fn
	done := false
	return func() {
		if !done {
			done = true
			o.disconnected++
		}
	}
}

func (o *fakeObserver) notify(ratio float64) {
	if o.fn != nil {
		o.fn(ratio)
	}
}

// manualScheduler runs ticks only when the test asks for them.
type manualScheduler struct {
	fn        func()
	interval  time.Duration
	started   int
	cancelled int
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) func() {
	s.started++
	s.interval = interval
	s.fn = fn
	done := false
	return func() {
		if !done {
			done = true
			s.cancelled++
			s.fn = nil
		}
	}
}

func (s *manualScheduler) running() bool { return s.fn != nil }

// advance fires up to n ticks and returns how many ran.
func (s *manualScheduler) advance(n int) int {
	ran := 0
	for i := 0; i < n && s.fn != nil; i++ {
		s.fn()
		ran++
	}
	return ran
}
