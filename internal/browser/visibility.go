//go:build js && wasm

package browser

import (
	"sync"
	"syscall/js"
)

// Intersection watches one element with an IntersectionObserver.
type Intersection struct {
	Element js.Value
}

// Observe implements viewstate.VisibilityObserver. Without
// IntersectionObserver support the counter simply never starts.
func (v Intersection) Observe(threshold float64, fn func(ratio float64)) func() {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.Type() != js.TypeFunction || !v.Element.Truthy() {
		return func() {}
	}

	callback := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			if entry.Get("isIntersecting").Truthy() {
				fn(entry.Get("intersectionRatio").Float())
			}
		}
		return nil
	})
	observer := ctor.New(callback, map[string]any{"threshold": threshold})
	observer.Call("observe", v.Element)

	var once sync.Once
	return func() {
		once.Do(func() {
			observer.Call("disconnect")
			callback.Release()
		})
	}
}
