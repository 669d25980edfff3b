package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// Step advances every body by one leapfrog substep of length dt.
//
// The three passes are strictly ordered: every position moves under the
// acceleration from the end of the previous substep before any new
// acceleration is computed, and every new acceleration reads the fully
// updated positions. Interleaving either boundary per-body would break
// the symmetry that bounds the integrator's long-run energy drift.
func (in Integrator) Step(bodies []*core.Body, dt float64) {
	halfDt2 := 0.5 * dt * dt
	for _, b := range bodies {
		b.Pos = r2.Add(r2.Add(b.Pos, r2.Scale(dt, b.Vel)), r2.Scale(halfDt2, b.Acc))
	}

	for i, b := range bodies {
		b.PrevAcc = b.Acc
		b.Acc = in.Accel(bodies, i)
	}

	halfDt := 0.5 * dt
	for _, b := range bodies {
		b.Vel = r2.Add(b.Vel, r2.Scale(halfDt, r2.Add(b.PrevAcc, b.Acc)))
	}
}

// Run applies n substeps of length dt. The caller owns the substep policy;
// Run is just the loop.
func (in Integrator) Run(bodies []*core.Body, dt float64, n int) {
	for i := 0; i < n; i++ {
		in.Step(bodies, dt)
	}
}
