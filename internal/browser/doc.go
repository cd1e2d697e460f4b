// Package browser implements the viewstate collaborators on top of the DOM
// through syscall/js. It only builds for GOOS=js GOARCH=wasm.
package browser
