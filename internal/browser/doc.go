//go:build js && wasm

// Package browser binds the portfolio page to the DOM through syscall/js.
//
// It is the only package that touches JavaScript values; everything it
// exposes satisfies interfaces declared by view, app, and particles.
package browser
