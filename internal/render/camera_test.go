package render

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

func testCamera() *Camera {
	c := NewCamera(core.DefaultParams(), 800, 600)
	c.Distance = 600 // one world unit per pixel
	return c
}

func TestWorldToScreenCenterAndOffset(t *testing.T) {
	c := testCamera()

	x, y := c.WorldToScreen(r2.Vec{})
	if x != 400 || y != 300 {
		t.Fatalf("world origin maps to (%v, %v), want screen center (400, 300)", x, y)
	}

	// Screen y grows downward, world y grows upward.
	x, y = c.WorldToScreen(r2.Vec{X: 10, Y: 20})
	if !scalar.EqualWithinAbs(x, 410, 1e-9) || !scalar.EqualWithinAbs(y, 280, 1e-9) {
		t.Fatalf("(10, 20) maps to (%v, %v), want (410, 280)", x, y)
	}
}

func TestZoomClampsToCameraRange(t *testing.T) {
	p := core.DefaultParams()
	c := NewCamera(p, 800, 600)

	c.Zoom(1e-12)
	if c.Distance != p.MinCameraDistance {
		t.Fatalf("Distance = %v, want clamp to %v", c.Distance, p.MinCameraDistance)
	}
	c.Zoom(1e12)
	if c.Distance != p.MaxCameraDistance {
		t.Fatalf("Distance = %v, want clamp to %v", c.Distance, p.MaxCameraDistance)
	}
}

func TestPanMovesCenterAgainstDrag(t *testing.T) {
	c := testCamera()

	// Dragging the content 50px right and 30px down moves the view
	// center the opposite way in world space.
	c.Pan(50, 30)
	if !scalar.EqualWithinAbs(c.Center.X, -50, 1e-9) || !scalar.EqualWithinAbs(c.Center.Y, 30, 1e-9) {
		t.Fatalf("Center = %+v, want (-50, 30)", c.Center)
	}

	// A body under the cursor stays under the cursor.
	x, y := c.WorldToScreen(r2.Vec{})
	if !scalar.EqualWithinAbs(x, 450, 1e-9) || !scalar.EqualWithinAbs(y, 330, 1e-9) {
		t.Fatalf("origin now at (%v, %v), want (450, 330)", x, y)
	}
}
