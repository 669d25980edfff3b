package scenes

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// fileScene is the on-disk JSON shape of a user-supplied scene.
type fileScene struct {
	Name      string     `json:"name"`
	Dt        float64    `json:"dt,omitempty"`
	Substeps  int        `json:"substeps,omitempty"`
	AutoOrbit bool       `json:"auto_orbit,omitempty"`
	Bodies    []fileBody `json:"bodies"`
}

type fileBody struct {
	Name   string     `json:"name"`
	Mass   float64    `json:"mass"`
	Radius float64    `json:"radius"`
	Pos    [2]float64 `json:"pos"`
	Vel    [2]float64 `json:"vel"`
	Color  string     `json:"color"`
}

// LoadFile reads a JSON scene description and builds its registry.
func LoadFile(path string) (*core.Registry, core.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Params{}, fmt.Errorf("scene file: %w", err)
	}
	return Load(data)
}

// Load parses a JSON scene description. Body validation failures carry the
// body's index; the first body is the auto-orbit center when auto_orbit is
// set, and any later body with a zero velocity gets a circular-orbit
// velocity about it.
func Load(data []byte) (*core.Registry, core.Params, error) {
	var fs fileScene
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, core.Params{}, fmt.Errorf("scene file: %w", err)
	}
	if len(fs.Bodies) == 0 {
		return nil, core.Params{}, fmt.Errorf("scene %q: no bodies", fs.Name)
	}

	p := core.DefaultParams()
	if fs.Dt > 0 {
		p.Dt = fs.Dt
	}
	if fs.Substeps > 0 {
		p.SubstepsPerTick = fs.Substeps
	}

	if fs.AutoOrbit {
		setOrbitalVelocities(fs.Bodies, p.G)
	}

	reg := core.NewRegistry()
	for i, fb := range fs.Bodies {
		b, err := core.NewBody(fb.Name, fb.Mass, fb.Radius,
			r2.Vec{X: fb.Pos[0], Y: fb.Pos[1]},
			r2.Vec{X: fb.Vel[0], Y: fb.Vel[1]},
			parseColor(fb.Color))
		if err != nil {
			return nil, p, fmt.Errorf("scene %q: body %d: %w", fs.Name, i, err)
		}
		reg.Add(b)
	}
	return reg, p, nil
}

// setOrbitalVelocities gives every zero-velocity body after the first a
// counter-clockwise circular-orbit velocity about the first body.
func setOrbitalVelocities(bodies []fileBody, g float64) {
	center := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel[0] != 0 || bodies[i].Vel[1] != 0 {
			continue
		}
		v := circularVelocity(g, center.Mass,
			r2.Vec{X: center.Pos[0], Y: center.Pos[1]},
			r2.Vec{X: bodies[i].Pos[0], Y: bodies[i].Pos[1]})
		bodies[i].Vel = [2]float64{v.X, v.Y}
	}
}

// parseColor interprets a "#rrggbb" string, falling back to a pale blue
// when the string is malformed or absent.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}
