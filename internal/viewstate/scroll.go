package viewstate

import "sync"

const (
	// ReferenceLine is the viewport y coordinate, in pixels from the top,
	// that decides which section is active.
	ReferenceLine = 100.0
	// TopButtonThreshold is the scroll offset past which the scroll-to-top
	// button is shown.
	TopButtonThreshold = 400.0
)

// Metrics is a snapshot of the scroll geometry, in CSS pixels.
type Metrics struct {
	Offset         float64
	DocumentHeight float64
	ViewportHeight float64
}

// Scrollable returns the distance the document can scroll.
func (m Metrics) Scrollable() float64 {
	return m.DocumentHeight - m.ViewportHeight
}

// Rect is the viewport-relative vertical extent of an element.
type Rect struct {
	Top    float64
	Bottom float64
}

// Straddles reports whether the rect covers the line at y.
func (r Rect) Straddles(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Viewport answers geometry queries about the current page.
type Viewport interface {
	Metrics() Metrics
	// SectionRect returns false when the section element is missing.
	SectionRect(id SectionID) (Rect, bool)
}

// ScrollSignal delivers scroll notifications. Listen returns a function that
// detaches fn; it must be safe to call more than once.
type ScrollSignal interface {
	Listen(fn func()) (stop func())
}

// ScrollState is the view state derived from the scroll position.
type ScrollState struct {
	ProgressPercent float64
	ShowTopButton   bool
	ActiveSection   SectionID
}

// Progress returns how far the document has been scrolled, in [0,100].
// Content that does not overflow the viewport yields 0.
func Progress(m Metrics) float64 {
	total := m.Scrollable()
	if total <= 0 {
		return 0
	}
	p := m.Offset / total * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// ShowTopButton reports whether the scroll-to-top affordance is visible.
func ShowTopButton(offset float64) bool {
	return offset > TopButtonThreshold
}

// ActiveSection returns the first section in document order whose box
// straddles the reference line. When none does, current is kept.
func ActiveSection(vp Viewport, current SectionID) SectionID {
	for _, s := range sections {
		r, ok := vp.SectionRect(s.ID)
		if ok && r.Straddles(ReferenceLine) {
			return s.ID
		}
	}
	return current
}

// ScrollTracker owns ScrollState and is its only writer.
type ScrollTracker struct {
	mu     sync.Mutex
	state  ScrollState
	render func(ScrollState)
	stop   func()
}

// NewScrollTracker returns a tracker positioned at the top of the page.
// render, when non-nil, receives every recomputed state.
func NewScrollTracker(render func(ScrollState)) *ScrollTracker {
	return &ScrollTracker{
		state:  ScrollState{ActiveSection: SectionHome},
		render: render,
	}
}

// Attach subscribes the tracker to signal. Any previous subscription is
// detached first, so a reconstructed page never leaves a listener behind.
func (t *ScrollTracker) Attach(signal ScrollSignal, vp Viewport) {
	t.Detach()
	stop := signal.Listen(func() { t.Update(vp) })

	t.mu.Lock()
	t.stop = stop
	t.mu.Unlock()
}

// Detach removes the scroll listener. It is safe to call repeatedly.
func (t *ScrollTracker) Detach() {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Attached reports whether a scroll listener is registered.
func (t *ScrollTracker) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Update recomputes the state from the viewport as one transition.
func (t *ScrollTracker) Update(vp Viewport) ScrollState {
	m := vp.Metrics()

	t.mu.Lock()
	next := ScrollState{
		ProgressPercent: Progress(m),
		ShowTopButton:   ShowTopButton(m.Offset),
		ActiveSection:   ActiveSection(vp, t.state.ActiveSection),
	}
	t.state = next
	render := t.render
	t.mu.Unlock()

	if render != nil {
		render(next)
	}
	return next
}

// State returns a copy of the current state.
func (t *ScrollTracker) State() ScrollState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
