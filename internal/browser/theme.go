//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/rvrdev/portfolio/internal/viewstate"
)

const darkQuery = "(prefers-color-scheme: dark)"

// MediaScheme reads the system color scheme through matchMedia.
type MediaScheme struct{}

func (MediaScheme) PrefersDark() (dark bool, err error) {
	defer recoverJS(&err)
	matchMedia := js.Global().Get("matchMedia")
	if matchMedia.Type() != js.TypeFunction {
		return false, viewstate.ErrUnavailable
	}
	return js.Global().Call("matchMedia", darkQuery).Get("matches").Truthy(), nil
}

// RootClass toggles the "dark" class on the document element.
type RootClass struct{}

func (RootClass) SetDark(dark bool) {
	classes := js.Global().Get("document").Get("documentElement").Get("classList")
	if dark {
		classes.Call("add", "dark")
	} else {
		classes.Call("remove", "dark")
	}
}
