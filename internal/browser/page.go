//go:build js && wasm

package browser

import (
	"fmt"
	"strconv"
	"sync"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"github.com/rvrdev/portfolio/internal/logging"
	"github.com/rvrdev/portfolio/internal/viewstate"
)

// Element ids and data attributes shared with web/templates.
const (
	progressBarID = "scroll-progress"
	scrollTopID   = "scroll-top"
	themeToggleID = "theme-toggle"
	navAttr       = "data-nav"
	counterAttr   = "data-counter"
	durationAttr  = "data-duration"
	suffixAttr    = "data-suffix"
	activeClass   = "active"
	visibleClass  = "visible"
)

// Page binds the view state to the rendered document.
type Page struct {
	Theme   *viewstate.ThemeController
	Scroll  *viewstate.ScrollTracker
	Counter []*viewstate.Counter

	mu      sync.Mutex
	release []func()
}

// Mount resolves the theme, starts tracking the scroll position, arms the
// statistic counters and wires the navigation controls.
func Mount() *Page {
	log := logging.For("page")
	p := &Page{
		Theme:  viewstate.NewThemeController(LocalStorage{}, MediaScheme{}, RootClass{}),
		Scroll: viewstate.NewScrollTracker(renderScroll),
	}

	dark := p.Theme.Initialize()
	renderTheme(dark)

	p.Scroll.Attach(WindowScroll{}, DOMViewport{})
	p.Scroll.Update(DOMViewport{})

	p.bindCounters()
	p.bindControls()

	log.WithFields(logrus.Fields{
		"dark":     dark,
		"counters": len(p.Counter),
	}).Debug("page mounted")
	return p
}

// Unmount detaches every listener, watcher and timer owned by the page.
func (p *Page) Unmount() {
	p.Scroll.Detach()
	for _, c := range p.Counter {
		c.Close()
	}

	p.mu.Lock()
	release := p.release
	p.release = nil
	p.mu.Unlock()
	for _, fn := range release {
		fn()
	}
	logging.For("page").Debug("page unmounted")
}

func (p *Page) bindCounters() {
	log := logging.For("counter")
	nodes := js.Global().Get("document").Call("querySelectorAll", "["+counterAttr+"]")
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		spec, err := counterSpec(el)
		if err != nil {
			log.WithError(err).Warn("skipping malformed counter")
			continue
		}
		el.Set("textContent", viewstate.FormatCounter(0, spec.Suffix))

		suffix := spec.Suffix
		c := viewstate.ObserveCounter(Intersection{Element: el}, spec, viewstate.TimeScheduler{}, func(v float64) {
			el.Set("textContent", viewstate.FormatCounter(v, suffix))
		})
		p.Counter = append(p.Counter, c)
	}
}

func counterSpec(el js.Value) (viewstate.CounterSpec, error) {
	target, err := strconv.ParseFloat(el.Call("getAttribute", counterAttr).String(), 64)
	if err != nil {
		return viewstate.CounterSpec{}, fmt.Errorf("target: %w", err)
	}
	duration, err := strconv.ParseFloat(el.Call("getAttribute", durationAttr).String(), 64)
	if err != nil {
		return viewstate.CounterSpec{}, fmt.Errorf("duration: %w", err)
	}
	suffix := ""
	if s := el.Call("getAttribute", suffixAttr); !s.IsNull() {
		suffix = s.String()
	}
	return viewstate.CounterSpec{Target: target, DurationSeconds: duration, Suffix: suffix}, nil
}

func (p *Page) bindControls() {
	doc := js.Global().Get("document")

	if btn := doc.Call("getElementById", themeToggleID); btn.Truthy() {
		p.on(btn, "click", func(js.Value) {
			renderTheme(p.Theme.Toggle())
		})
	}
	if btn := doc.Call("getElementById", scrollTopID); btn.Truthy() {
		p.on(btn, "click", func(js.Value) {
			viewstate.ScrollToTop(SmoothNavigator{})
		})
	}

	links := doc.Call("querySelectorAll", "["+navAttr+"]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		id := viewstate.SectionID(link.Call("getAttribute", navAttr).String())
		p.on(link, "click", func(event js.Value) {
			if viewstate.Navigate(SmoothNavigator{}, id) {
				event.Call("preventDefault")
			}
		})
	}
}

// on registers a DOM event handler released on Unmount.
func (p *Page) on(target js.Value, event string, fn func(js.Value)) {
	handler := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	target.Call("addEventListener", event, handler)

	p.mu.Lock()
	p.release = append(p.release, func() {
		target.Call("removeEventListener", event, handler)
		handler.Release()
	})
	p.mu.Unlock()
}

func renderScroll(s viewstate.ScrollState) {
	doc := js.Global().Get("document")

	if bar := doc.Call("getElementById", progressBarID); bar.Truthy() {
		bar.Get("style").Set("transform", fmt.Sprintf("scaleX(%.4f)", s.ProgressPercent/100))
	}
	if btn := doc.Call("getElementById", scrollTopID); btn.Truthy() {
		btn.Get("classList").Call("toggle", visibleClass, s.ShowTopButton)
		btn.Set("hidden", !s.ShowTopButton)
	}

	links := doc.Call("querySelectorAll", "["+navAttr+"]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		active := link.Call("getAttribute", navAttr).String() == string(s.ActiveSection)
		link.Get("classList").Call("toggle", activeClass, active)
		if active {
			link.Call("setAttribute", "aria-current", "true")
		} else {
			link.Call("removeAttribute", "aria-current")
		}
	}
}

func renderTheme(dark bool) {
	if btn := js.Global().Get("document").Call("getElementById", themeToggleID); btn.Truthy() {
		btn.Call("setAttribute", "aria-pressed", strconv.FormatBool(dark))
	}
}
