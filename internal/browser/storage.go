//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"

	"github.com/rvrdev/portfolio/internal/viewstate"
)

// LocalStorage is a viewstate.Store over window.localStorage. Browsers throw
// when storage is disabled; those exceptions come back as ErrUnavailable.
type LocalStorage struct{}

func (LocalStorage) Get(key string) (value string, err error) {
	defer recoverJS(&err)
	storage, err := localStorage()
	if err != nil {
		return "", err
	}
	v := storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", viewstate.ErrNotFound
	}
	return v.String(), nil
}

func (LocalStorage) Set(key, value string) (err error) {
	defer recoverJS(&err)
	storage, err := localStorage()
	if err != nil {
		return err
	}
	storage.Call("setItem", key, value)
	return nil
}

func localStorage() (js.Value, error) {
	s := js.Global().Get("localStorage")
	if s.IsUndefined() || s.IsNull() {
		return js.Value{}, viewstate.ErrUnavailable
	}
	return s, nil
}

// recoverJS turns a thrown JavaScript exception into an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = fmt.Errorf("%w: %s", viewstate.ErrUnavailable, jsErr.Error())
		return
	}
	panic(r)
}
