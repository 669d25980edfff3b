// Package physics advances a set of bodies under mutual Newtonian
// gravity with a velocity-Verlet (leapfrog) integrator.
package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// Integrator advances a body set one substep at a time. It carries only
// configuration constants; all mutable simulation state lives in the
// bodies themselves, so the same Integrator may drive any registry.
type Integrator struct {
	// G is the gravitational constant in the simulation's unit
	// convention (see core.Params).
	G float64

	// MinSeparation clamps the pairwise distance used by the
	// inverse-square term. Without it, near-coincident bodies produce
	// unbounded accelerations and the velocities go non-finite.
	MinSeparation float64
}

// NewIntegrator builds an Integrator from validated parameters.
func NewIntegrator(p core.Params) Integrator {
	return Integrator{G: p.G, MinSeparation: p.MinSeparation}
}

// Accel sums the gravitational acceleration on bodies[i] contributed by
// every other body: G*m_j/d^2 along the unit displacement toward j. It
// reads positions only.
//
// Pairs closer than MinSeparation are treated as MinSeparation apart. An
// exactly coincident pair has no defined force direction and contributes
// nothing.
func (in Integrator) Accel(bodies []*core.Body, i int) r2.Vec {
	var acc r2.Vec
	bi := bodies[i]
	minSep2 := in.MinSeparation * in.MinSeparation
	for j, bj := range bodies {
		if j == i {
			continue
		}
		d := r2.Sub(bj.Pos, bi.Pos)
		dist2 := d.X*d.X + d.Y*d.Y
		if dist2 == 0 {
			continue
		}
		norm := r2.Norm(d)
		if dist2 < minSep2 {
			dist2 = minSep2
		}
		acc = r2.Add(acc, r2.Scale(in.G*bj.Mass/(dist2*norm), d))
	}
	return acc
}
