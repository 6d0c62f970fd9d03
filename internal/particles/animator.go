package particles

import "context"

// Scheduler runs a callback on the next display frame.
type Scheduler interface {
	RequestFrame(fn func())
}

// Animator drives a Field once per frame.
type Animator struct {
	field   *Field
	surface Surface
	frames  Scheduler
}

// NewAnimator binds a field to its drawing surface and frame source.
func NewAnimator(field *Field, surface Surface, frames Scheduler) *Animator {
	return &Animator{field: field, surface: surface, frames: frames}
}

// Run draws a frame immediately and then one per scheduled frame. Each frame
// schedules the next before returning; rescheduling stops once ctx is done.
func (a *Animator) Run(ctx context.Context) {
	var frame func()
	frame = func() {
		if ctx.Err() != nil {
			return
		}
		a.field.Step(a.surface)
		a.frames.RequestFrame(frame)
	}
	frame()
}
