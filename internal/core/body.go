package core

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Body is a single massive point confined to the simulation plane.
//
// Acc holds the acceleration computed at the end of the most recent
// integrator substep and PrevAcc the one before that; the leapfrog update
// needs both. Both start at zero for a freshly created body.
type Body struct {
	Name  string
	Color color.RGBA

	Pos r2.Vec
	Vel r2.Vec

	Acc     r2.Vec
	PrevAcc r2.Vec

	Mass float64

	radius    float64
	logRadius float64
}

// NewBody validates and constructs a body. Mass and radius must be
// positive and finite; position and velocity components must be finite.
// The integrator assumes these hold and never re-checks them.
func NewBody(name string, mass, radius float64, pos, vel r2.Vec, col color.RGBA) (*Body, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("body %q: mass must be positive and finite, got %v", name, mass)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("body %q: radius must be positive and finite, got %v", name, radius)
	}
	if !finite(pos) || !finite(vel) {
		return nil, fmt.Errorf("body %q: position and velocity must be finite", name)
	}
	b := &Body{Name: name, Color: col, Pos: pos, Vel: vel, Mass: mass}
	b.SetRadius(radius)
	return b, nil
}

// SetRadius updates the physical radius together with the cached
// log-radius the scale mapper interpolates over.
func (b *Body) SetRadius(radius float64) {
	b.radius = radius
	b.logRadius = math.Log10(radius)
}

// Radius returns the physical radius.
func (b *Body) Radius() float64 { return b.radius }

// LogRadius returns log10 of the physical radius.
func (b *Body) LogRadius() float64 { return b.logRadius }

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
