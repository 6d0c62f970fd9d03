//go:build js && wasm

package browser

import "syscall/js"

// Viewport is the window's CSS size and device pixel ratio.
type Viewport struct {
	Width, Height float64
	PixelRatio    float64
}

// CurrentViewport reads the window dimensions.
func CurrentViewport() Viewport {
	win := js.Global()
	ratio := 1.0
	if v := win.Get("devicePixelRatio"); v.Type() == js.TypeNumber {
		ratio = v.Float()
	}
	return Viewport{
		Width:      win.Get("innerWidth").Float(),
		Height:     win.Get("innerHeight").Float(),
		PixelRatio: ratio,
	}
}

// OnResize calls fn after every window resize. The listener is passive and
// lives for the page's lifetime.
func OnResize(fn func()) {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	opts := js.Global().Get("Object").New()
	opts.Set("passive", true)
	js.Global().Call("addEventListener", "resize", cb, opts)
}

// FrameScheduler schedules callbacks with requestAnimationFrame. It reuses a
// single JavaScript function for every frame.
type FrameScheduler struct {
	cb   js.Func
	next func()
}

// NewFrameScheduler builds a scheduler bound to the window.
func NewFrameScheduler() *FrameScheduler {
	s := &FrameScheduler{}
	s.cb = js.FuncOf(func(js.Value, []js.Value) any {
		fn := s.next
		s.next = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return s
}

// RequestFrame runs fn on the next display refresh.
func (s *FrameScheduler) RequestFrame(fn func()) {
	s.next = fn
	js.Global().Call("requestAnimationFrame", s.cb)
}
