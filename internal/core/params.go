package core

import "fmt"

// Params holds the configuration constants the integrator, the scale
// mapper and the viewer consume. Values are fixed at startup; nothing in
// the hot path mutates or re-validates them.
//
// Unit convention: lengths in gigameters (1e6 km), masses in Earth
// masses, time in hours. Radii are stored in Earth radii — the visual
// mapper never renders true scale, so the radius unit only has to be
// consistent with itself.
type Params struct {
	// G is the gravitational constant expressed in the unit convention
	// above: Gm^3 / (M_earth * hr^2).
	G float64

	// MinSeparation is the smallest pairwise distance the force
	// computation honors. Closer pairs are treated as being this far
	// apart so the inverse-square term stays finite.
	MinSeparation float64

	// Camera distance range the scale mapper interpolates over.
	MinCameraDistance float64
	MaxCameraDistance float64

	// Base-scale output range: overall render-size multiplier at the
	// nearest and farthest camera distance.
	BaseScaleMin float64
	BaseScaleMax float64

	// Largest-to-smallest rendered size ratio at the nearest and
	// farthest camera distance.
	MinRadiusRatio float64
	MaxRadiusRatio float64

	// Dt is the substep timestep in hours; SubstepsPerTick is how many
	// substeps one external tick advances.
	Dt              float64
	SubstepsPerTick int
}

// DefaultParams returns the standard configuration.
func DefaultParams() Params {
	return Params{
		G:                 5.1654e-6,
		MinSeparation:     1e-3,
		MinCameraDistance: 100,
		MaxCameraDistance: 1e7,
		BaseScaleMin:      1e3,
		BaseScaleMax:      1e5,
		MinRadiusRatio:    4,
		MaxRadiusRatio:    400,
		Dt:                24,
		SubstepsPerTick:   8,
	}
}

// Validate rejects inverted ranges and non-positive constants. Callers run
// it once when configuration is assembled, before the first substep.
func (p Params) Validate() error {
	if p.G <= 0 {
		return fmt.Errorf("params: G must be positive, got %v", p.G)
	}
	if p.MinSeparation <= 0 {
		return fmt.Errorf("params: min separation must be positive, got %v", p.MinSeparation)
	}
	if p.MinCameraDistance <= 0 || p.MaxCameraDistance <= p.MinCameraDistance {
		return fmt.Errorf("params: camera distance range [%v, %v] is inverted or empty",
			p.MinCameraDistance, p.MaxCameraDistance)
	}
	if p.BaseScaleMin <= 0 || p.BaseScaleMax < p.BaseScaleMin {
		return fmt.Errorf("params: base scale range [%v, %v] is inverted or empty",
			p.BaseScaleMin, p.BaseScaleMax)
	}
	if p.MinRadiusRatio < 1 || p.MaxRadiusRatio < p.MinRadiusRatio {
		return fmt.Errorf("params: radius ratio range [%v, %v] is inverted or below 1",
			p.MinRadiusRatio, p.MaxRadiusRatio)
	}
	if p.Dt <= 0 {
		return fmt.Errorf("params: dt must be positive, got %v", p.Dt)
	}
	if p.SubstepsPerTick <= 0 {
		return fmt.Errorf("params: substeps per tick must be positive, got %d", p.SubstepsPerTick)
	}
	return nil
}
