//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "this command runs in the browser: build it with GOOS=js GOARCH=wasm (see Makefile target wasm)")
	os.Exit(2)
}
