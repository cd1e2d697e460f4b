//go:build js && wasm

// Command wasm is the in-browser half of the portfolio. It mounts the view
// state onto the exported page and keeps it alive until the page is hidden.
package main

import (
	"sync"
	"syscall/js"

	"github.com/rvrdev/portfolio/internal/browser"
	"github.com/rvrdev/portfolio/internal/logging"
)

func main() {
	if level := js.Global().Get("document").Get("documentElement").Call("getAttribute", "data-log-level"); !level.IsNull() {
		if err := logging.SetLevel(level.String()); err != nil {
			logging.Log.WithError(err).Warn("ignoring log level")
		}
	}

	page := browser.Mount()

	done := make(chan struct{})
	var once sync.Once
	unmount := js.FuncOf(func(_ js.Value, args []js.Value) any {
		// a page restored from the back/forward cache keeps running
		if len(args) > 0 && args[0].Get("persisted").Truthy() {
			return nil
		}
		once.Do(func() {
			page.Unmount()
			close(done)
		})
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unmount)

	<-done
	js.Global().Call("removeEventListener", "pagehide", unmount)
	unmount.Release()
}
