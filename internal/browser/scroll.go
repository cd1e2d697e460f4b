//go:build js && wasm

package browser

import (
	"sync"
	"syscall/js"

	"github.com/rvrdev/portfolio/internal/viewstate"
)

// WindowScroll is the window "scroll" event as a viewstate.ScrollSignal.
type WindowScroll struct{}

func (WindowScroll) Listen(fn func()) func() {
	handler := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	opts := map[string]any{"passive": true}
	js.Global().Call("addEventListener", "scroll", handler, opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			js.Global().Call("removeEventListener", "scroll", handler, opts)
			handler.Release()
		})
	}
}

// DOMViewport answers geometry queries from the live document.
type DOMViewport struct{}

func (DOMViewport) Metrics() viewstate.Metrics {
	root := js.Global().Get("document").Get("documentElement")
	return viewstate.Metrics{
		Offset:         js.Global().Get("scrollY").Float(),
		DocumentHeight: root.Get("scrollHeight").Float(),
		ViewportHeight: root.Get("clientHeight").Float(),
	}
}

func (DOMViewport) SectionRect(id viewstate.SectionID) (viewstate.Rect, bool) {
	el := byID(string(id))
	if !el.Truthy() {
		return viewstate.Rect{}, false
	}
	box := el.Call("getBoundingClientRect")
	return viewstate.Rect{Top: box.Get("top").Float(), Bottom: box.Get("bottom").Float()}, true
}

// SmoothNavigator scrolls with the browser's smooth behaviour.
type SmoothNavigator struct{}

func (SmoothNavigator) ScrollIntoView(id viewstate.SectionID) {
	if el := byID(string(id)); el.Truthy() {
		el.Call("scrollIntoView", map[string]any{"behavior": "smooth", "block": "start"})
	}
}

func (SmoothNavigator) ScrollToTop() {
	js.Global().Call("scrollTo", map[string]any{"top": 0, "behavior": "smooth"})
}

func byID(id string) js.Value {
	return js.Global().Get("document").Call("getElementById", id)
}
