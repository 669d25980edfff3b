// Package scenes is the initial-condition catalogue: named factories that
// populate a body registry and recommend the integration parameters the
// scene was tuned for.
package scenes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// Factory builds a populated registry plus the parameters the scene was
// tuned for. Callers may still override individual parameters from flags.
type Factory func(seed int64) (*core.Registry, core.Params, error)

var factories = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	factories[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return factories
}

// Build resolves a scene name and runs its factory.
func Build(name string, seed int64) (*core.Registry, core.Params, error) {
	f, ok := factories[name]
	if !ok {
		return nil, core.Params{}, fmt.Errorf("unknown scene %q", name)
	}
	return f(seed)
}

// CircularSpeed returns the speed of a circular orbit of radius r about a
// central mass m under gravitational constant g.
func CircularSpeed(g, m, r float64) float64 {
	return math.Sqrt(g * m / r)
}

// circularVelocity returns the counter-clockwise circular-orbit velocity
// for a body at pos relative to a central body at center with mass m.
func circularVelocity(g, m float64, center, pos r2.Vec) r2.Vec {
	d := r2.Sub(pos, center)
	r := r2.Norm(d)
	v := CircularSpeed(g, m, r)
	return r2.Scale(v, r2.Vec{X: -d.Y / r, Y: d.X / r})
}
