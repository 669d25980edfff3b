// Package ui draws the diagnostics overlay on top of the simulation view.
package ui

// Stats is the per-frame diagnostic snapshot the HUD renders.
type Stats struct {
	Scene    string
	Bodies   int
	Distance float64

	// EnergyDrift is the total-energy change relative to the scene's
	// initial energy; Momentum is the magnitude of the total momentum.
	EnergyDrift float64
	Momentum    float64

	Paused bool
}
