// Package render turns simulation state into pixels: a camera transform,
// an adaptive distance grid, and a painter that sizes bodies through the
// scale mapper.
package render

import (
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// Camera is the 2-D viewpoint: a world-space center, a rotation about it,
// and a viewing distance. The distance doubles as the zoom scalar handed
// to the scale mapper and is clamped to the configured camera range.
type Camera struct {
	Center   r2.Vec
	Angle    float64
	Distance float64

	minDistance float64
	maxDistance float64
	viewW       int
	viewH       int
}

// NewCamera places a camera at the world origin at the far end of the
// configured distance range.
func NewCamera(p core.Params, viewW, viewH int) *Camera {
	return &Camera{
		Distance:    p.MaxCameraDistance,
		minDistance: p.MinCameraDistance,
		maxDistance: p.MaxCameraDistance,
		viewW:       viewW,
		viewH:       viewH,
	}
}

// SetViewport updates the screen dimensions the transform maps onto.
func (c *Camera) SetViewport(w, h int) {
	c.viewW = w
	c.viewH = h
}

// UnitsPerPixel reports the current zoom: the vertical view extent equals
// the camera distance.
func (c *Camera) UnitsPerPixel() float64 {
	if c.viewH <= 0 {
		return 1
	}
	return c.Distance / float64(c.viewH)
}

// Zoom multiplies the camera distance, clamped to the configured range.
func (c *Camera) Zoom(factor float64) {
	d := c.Distance * factor
	if d < c.minDistance {
		d = c.minDistance
	}
	if d > c.maxDistance {
		d = c.maxDistance
	}
	c.Distance = d
}

// Pan moves the view center by a screen-space pixel delta, respecting the
// current rotation and zoom.
func (c *Camera) Pan(dxPix, dyPix float64) {
	upp := c.UnitsPerPixel()
	delta := r2.Rotate(r2.Vec{X: -dxPix * upp, Y: dyPix * upp}, c.Angle, r2.Vec{})
	c.Center = r2.Add(c.Center, delta)
}

// Orbit rotates the view about its center.
func (c *Camera) Orbit(dAngle float64) {
	c.Angle += dAngle
}

func vec(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

// WorldToScreen projects a world position into screen pixels. Screen y
// grows downward.
func (c *Camera) WorldToScreen(p r2.Vec) (x, y float64) {
	rel := r2.Sub(r2.Rotate(p, -c.Angle, c.Center), c.Center)
	upp := c.UnitsPerPixel()
	x = float64(c.viewW)/2 + rel.X/upp
	y = float64(c.viewH)/2 - rel.Y/upp
	return x, y
}
