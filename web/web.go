// Package web embeds the page templates and the static assets served next to
// the rendered page.
package web

import "embed"

// FS holds templates/ and static/. The wasm bundle and wasm_exec.js are
// copied into static/ by `make wasm` before the command is built.
//
//go:embed templates/*.tmpl static
var FS embed.FS
