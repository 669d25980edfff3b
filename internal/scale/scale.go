// Package scale maps true-to-scale physical radii onto visually legible
// render sizes. Rendering bodies at their real radii would make almost
// all of them invisible; the mapper keeps every body on screen across
// orders-of-magnitude zoom changes.
package scale

import "orrery/internal/core"

// Mapper converts a camera distance plus a body's log-radius into a
// dimensionless render-scale multiplier. It is pure: no state beyond the
// configured constants, no error conditions beyond the degenerate-range
// guard in RelativeScale.
type Mapper struct {
	MinDistance float64
	MaxDistance float64
	BaseMin     float64
	BaseMax     float64
	RatioMin    float64
	RatioMax    float64
}

// NewMapper builds a Mapper from validated parameters.
func NewMapper(p core.Params) Mapper {
	return Mapper{
		MinDistance: p.MinCameraDistance,
		MaxDistance: p.MaxCameraDistance,
		BaseMin:     p.BaseScaleMin,
		BaseMax:     p.BaseScaleMax,
		RatioMin:    p.MinRadiusRatio,
		RatioMax:    p.MaxRadiusRatio,
	}
}

// BaseScale maps the camera distance onto the overall scale range, so a
// reference body keeps a visible size at any zoom level. Distances
// outside the camera range clamp to its ends; extrapolating would invert
// the scale at extreme zoom.
func (m Mapper) BaseScale(d float64) float64 {
	return lerp(m.BaseMin, m.BaseMax, m.distanceT(d))
}

// RelativeScale maps a body's position within the registry's log-radius
// span [logrMin, logrMax] onto [1, x], where x is the distance-dependent
// largest-to-smallest size ratio. A zero-width span (single body, or all
// radii equal) returns exactly 1 rather than dividing by zero.
func (m Mapper) RelativeScale(d, logr, logrMin, logrMax float64) float64 {
	x := lerp(m.RatioMin, m.RatioMax, m.distanceT(d))
	if logrMin == logrMax {
		return 1
	}
	t := (logr - logrMin) / (logrMax - logrMin)
	return lerp(1, x, t)
}

// RenderScale is the body's final render scale: the world-space size a
// unit sprite is scaled to. The physical radius enters only through its
// logarithm; true scale is never rendered. Recomputed once per render
// frame per body.
func (m Mapper) RenderScale(d float64, b *core.Body, logrMin, logrMax float64) float64 {
	return m.BaseScale(d) * m.RelativeScale(d, b.LogRadius(), logrMin, logrMax)
}

func (m Mapper) distanceT(d float64) float64 {
	if d < m.MinDistance {
		d = m.MinDistance
	}
	if d > m.MaxDistance {
		d = m.MaxDistance
	}
	return (d - m.MinDistance) / (m.MaxDistance - m.MinDistance)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
