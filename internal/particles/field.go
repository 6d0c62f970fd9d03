package particles

import (
	"math"
	"math/rand/v2"
)

// Options tunes the particle network. Distances and speeds are CSS pixels and
// are scaled by the device pixel ratio.
type Options struct {
	Count        int
	MaxSpeed     float64
	LinkDistance float64
	DotRadius    float64
}

// DefaultOptions returns the page's particle settings.
func DefaultOptions() Options {
	return Options{
		Count:        70,
		MaxSpeed:     0.35,
		LinkDistance: 120,
		DotRadius:    1.35,
	}
}

// State is the lifecycle stage of a Field.
type State int

const (
	StateUninitialized State = iota
	StateSized
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSized:
		return "sized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Particle is a point with a per-frame velocity, in device pixels.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// Size is the canvas backing store size after a resize.
type Size struct {
	Width, Height int
	PixelRatio    float64
}

// Field is the particle set bound to one canvas. It is not safe for
// concurrent use; the browser drives it from a single thread.
type Field struct {
	opts  Options
	rng   *rand.Rand
	size  Size
	pts   []Particle
	state State
}

// NewField builds an uninitialized field. A nil rng uses a randomly seeded
// source.
func NewField(opts Options, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{opts: opts, rng: rng, size: Size{PixelRatio: 1}}
}

// ClampPixelRatio bounds a device pixel ratio to [1, 2]. Missing or
// non-finite ratios count as 1.
func ClampPixelRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return 1
	}
	return min(2, max(1, ratio))
}

// Resize fits the field to a viewport and replaces every particle.
func (f *Field) Resize(cssWidth, cssHeight, pixelRatio float64) Size {
	dpr := ClampPixelRatio(pixelRatio)
	size := Size{
		Width:      int(math.Floor(max(0, cssWidth) * dpr)),
		Height:     int(math.Floor(max(0, cssHeight) * dpr)),
		PixelRatio: dpr,
	}
	w, h := float64(size.Width), float64(size.Height)
	speed := f.opts.MaxSpeed

	pts := make([]Particle, f.opts.Count)
	for i := range pts {
		pts[i] = Particle{
			X:  f.uniform(0, w),
			Y:  f.uniform(0, h),
			VX: f.uniform(-speed, speed) * dpr,
			VY: f.uniform(-speed, speed) * dpr,
		}
	}

	f.size = size
	f.pts = pts
	f.state = StateSized
	return size
}

func (f *Field) uniform(lo, hi float64) float64 {
	return f.rng.Float64()*(hi-lo) + lo
}

// Size returns the current canvas size.
func (f *Field) Size() Size {
	return f.size
}

// State returns the lifecycle stage.
func (f *Field) State() State {
	return f.state
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.pts))
	copy(out, f.pts)
	return out
}

// Step advances the simulation by one frame and draws it onto s.
// A field that was never sized draws nothing.
func (f *Field) Step(s Surface) {
	if f.state == StateUninitialized {
		return
	}
	f.state = StateRunning

	pts := f.pts
	dpr := f.size.PixelRatio
	w, h := float64(f.size.Width), float64(f.size.Height)

	s.Clear(w, h)
	s.FillRadialGradient(vignette(w, h), w, h)

	radius := f.opts.DotRadius * dpr
	for i := range pts {
		pts[i].advance(w, h)
		s.FillCircle(pts[i].X, pts[i].Y, radius, dotColor)
	}

	maxDist := f.opts.LinkDistance * dpr
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			a, b := pts[i], pts[j]
			alpha, ok := LinkAlpha(math.Hypot(a.X-b.X, a.Y-b.Y), maxDist)
			if !ok {
				continue
			}
			stroke := linkColor
			stroke.A = alpha
			s.StrokeLine(a.X, a.Y, b.X, b.Y, dpr, stroke)
		}
	}
}

// advance moves the particle and bounces it off the [0, w]×[0, h] walls.
// Axes are handled independently.
func (p *Particle) advance(w, h float64) {
	p.X, p.VX = bounce(p.X+p.VX, p.VX, w)
	p.Y, p.VY = bounce(p.Y+p.VY, p.VY, h)
}

func bounce(pos, vel, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		return 0, -vel
	case pos > limit:
		return limit, -vel
	default:
		return pos, vel
	}
}

// LinkAlpha returns the opacity of the link between two particles dist apart.
// It is (1 - dist/maxDist) * 0.18 below the threshold and reports false at or
// beyond it.
func LinkAlpha(dist, maxDist float64) (float64, bool) {
	if maxDist <= 0 || dist >= maxDist {
		return 0, false
	}
	return (1 - dist/maxDist) * linkAlphaScale, true
}
