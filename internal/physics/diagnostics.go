package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// Energy returns the total mechanical energy of the system: kinetic plus
// pairwise gravitational potential, using the same minimum-separation
// clamp as the force computation so the two stay consistent.
func (in Integrator) Energy(bodies []*core.Body) float64 {
	var kinetic, potential float64
	for i, b := range bodies {
		kinetic += 0.5 * b.Mass * (b.Vel.X*b.Vel.X + b.Vel.Y*b.Vel.Y)
		for _, o := range bodies[i+1:] {
			dist := r2.Norm(r2.Sub(o.Pos, b.Pos))
			if dist < in.MinSeparation {
				dist = in.MinSeparation
			}
			potential -= in.G * b.Mass * o.Mass / dist
		}
	}
	return kinetic + potential
}

// Momentum returns the total linear momentum of the system.
func (in Integrator) Momentum(bodies []*core.Body) r2.Vec {
	var p r2.Vec
	for _, b := range bodies {
		p = r2.Add(p, r2.Scale(b.Mass, b.Vel))
	}
	return p
}
