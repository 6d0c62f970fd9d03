package particles

import (
	"fmt"
	"strconv"
)

// Color is an sRGB color with alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// CSS formats the color as a CSS rgba() value.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'g', -1, 64))
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// RadialGradient describes a two-circle radial gradient.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// Surface is the drawing target for a frame. Coordinates are device pixels.
type Surface interface {
	Clear(width, height float64)
	FillRadialGradient(g RadialGradient, width, height float64)
	FillCircle(x, y, radius float64, fill Color)
	StrokeLine(x0, y0, x1, y1, width float64, stroke Color)
}

var (
	dotColor      = Color{R: 255, G: 255, B: 255, A: 0.55}
	vignetteInner = Color{R: 255, G: 255, B: 255, A: 0.03}
	vignetteOuter = Color{R: 0, G: 0, B: 0, A: 0}
	linkColor     = Color{R: 106, G: 209, B: 255}
)

// linkAlphaScale is the opacity of a link between coincident particles.
const linkAlphaScale = 0.18

// vignette is the static background wash for a w×h canvas.
func vignette(w, h float64) RadialGradient {
	return RadialGradient{
		X0: w * 0.5, Y0: h * 0.15, R0: 0,
		X1: w * 0.5, Y1: h * 0.5, R1: max(w, h) * 0.65,
		Stops: []ColorStop{
			{Offset: 0, Color: vignetteInner},
			{Offset: 1, Color: vignetteOuter},
		},
	}
}
