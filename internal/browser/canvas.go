//go:build js && wasm

package browser

import (
	"fmt"
	"math"
	"strconv"
	"syscall/js"

	"github.com/louisbranch/portfolio/internal/particles"
)

// Canvas draws particle frames onto a 2D canvas context.
type Canvas struct {
	el  js.Value
	ctx js.Value
}

// NewCanvas binds the canvas element with the given id.
func NewCanvas(doc *Document, id string) (*Canvas, error) {
	el, err := doc.element(id)
	if err != nil {
		return nil, err
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, fmt.Errorf("canvas #%s has no 2d context", id)
	}
	return &Canvas{el: el, ctx: ctx}, nil
}

// Fit sizes the backing store to size and the element to the viewport.
func (c *Canvas) Fit(size particles.Size, vp Viewport) {
	c.el.Set("width", size.Width)
	c.el.Set("height", size.Height)
	style := c.el.Get("style")
	style.Set("width", strconv.FormatFloat(vp.Width, 'f', -1, 64)+"px")
	style.Set("height", strconv.FormatFloat(vp.Height, 'f', -1, 64)+"px")
}

func (c *Canvas) Clear(width, height float64) {
	c.ctx.Call("clearRect", 0, 0, width, height)
}

func (c *Canvas) FillRadialGradient(g particles.RadialGradient, width, height float64) {
	grad := c.ctx.Call("createRadialGradient", g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	for _, stop := range g.Stops {
		grad.Call("addColorStop", stop.Offset, stop.Color.CSS())
	}
	c.ctx.Set("fillStyle", grad)
	c.ctx.Call("fillRect", 0, 0, width, height)
}

func (c *Canvas) FillCircle(x, y, radius float64, fill particles.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, radius, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", fill.CSS())
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, stroke particles.Color) {
	c.ctx.Set("strokeStyle", stroke.CSS())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}
