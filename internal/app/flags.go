// Package app owns the viewer: command-line configuration, scene loading,
// and the ebiten game loop that drives the integrator at a fixed substep
// cadence.
package app

import (
	"flag"

	"orrery/internal/core"
	"orrery/internal/scenes"
)

// Config represents the command-line parameters shared by the viewer and
// the bench driver.
type Config struct {
	Scene     string
	SceneFile string
	Width     int
	Height    int
	TPS       int
	Substeps  int
	Dt        float64
	Seed      int64
}

// NewConfig returns a Config populated with sensible defaults. Substeps
// and Dt default to zero, meaning "use the scene's recommendation".
func NewConfig() *Config {
	return &Config{Scene: "solar", Width: 1280, Height: 800, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "built-in scene to run")
	fs.StringVar(&c.SceneFile, "scene-file", c.SceneFile, "JSON scene file, overrides -scene")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "external ticks per second")
	fs.IntVar(&c.Substeps, "substeps", c.Substeps, "integrator substeps per tick (0 = scene default)")
	fs.Float64Var(&c.Dt, "dt", c.Dt, "substep timestep in hours (0 = scene default)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized scenes")
}

// SceneName reports which scene the config resolves to, for display.
func (c *Config) SceneName() string {
	if c.SceneFile != "" {
		return c.SceneFile
	}
	return c.Scene
}

// Load builds the registry and parameters for the configured scene,
// applies the flag overrides, and validates the result. Configuration is
// the one place validation happens; the integrator assumes it.
func (c *Config) Load() (*core.Registry, core.Params, error) {
	var (
		reg *core.Registry
		p   core.Params
		err error
	)
	if c.SceneFile != "" {
		reg, p, err = scenes.LoadFile(c.SceneFile)
	} else {
		reg, p, err = scenes.Build(c.Scene, c.Seed)
	}
	if err != nil {
		return nil, p, err
	}
	if c.Substeps > 0 {
		p.SubstepsPerTick = c.Substeps
	}
	if c.Dt > 0 {
		p.Dt = c.Dt
	}
	if err := p.Validate(); err != nil {
		return nil, p, err
	}
	return reg, p, nil
}
