//go:build ebiten

package app

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
	"orrery/internal/physics"
	"orrery/internal/render"
	"orrery/internal/scale"
	"orrery/internal/ui"
)

var backgroundColor = color.RGBA{0x0b, 0x0d, 0x12, 0xff}

// Game adapts the simulation to the ebiten.Game interface: each update
// tick runs a fixed number of integrator substeps, then Draw reads the
// settled positions once. Ownership is explicit — main builds one
// registry and one parameter set and hands them in; nothing reaches for
// globals.
type Game struct {
	cfg *Config

	registry *core.Registry
	params   core.Params
	integ    physics.Integrator
	camera   *render.Camera
	painter  *render.BodyPainter
	grid     *render.Grid
	hud      *ui.HUD

	initialEnergy float64

	seed     int64
	paused   bool
	tickOnce bool
	showGrid bool

	dragging     bool
	dragX, dragY int
}

// New constructs a Game around an already-loaded scene.
func New(cfg *Config, reg *core.Registry, p core.Params) *Game {
	g := &Game{
		cfg:      cfg,
		seed:     cfg.Seed,
		showGrid: true,
		hud:      ui.NewHUD(),
		grid:     render.NewGrid(80),
	}
	g.adopt(reg, p)
	return g
}

func (g *Game) adopt(reg *core.Registry, p core.Params) {
	g.registry = reg
	g.params = p
	g.integ = physics.NewIntegrator(p)
	g.painter = render.NewBodyPainter(scale.NewMapper(p))
	g.camera = render.NewCamera(p, g.cfg.Width, g.cfg.Height)
	g.camera.Distance = frameDistance(reg, p)
	g.initialEnergy = g.integ.Energy(reg.Bodies())
}

// Reset rebuilds the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.cfg.Seed = seed
	g.seed = seed
	reg, p, err := g.cfg.Load()
	if err != nil {
		log.Printf("reset: %v", err)
		return
	}
	g.adopt(reg, p)
	g.tickOnce = false
}

// Update handles input and advances the physics by one external tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}

	g.updateCamera()

	if !g.paused || g.tickOnce {
		g.integ.Run(g.registry.Bodies(), g.params.Dt, g.params.SubstepsPerTick)
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateCamera() {
	// Arrows move the viewpoint; Pan takes the screen-space delta of the
	// content, which is the opposite direction.
	const panStep = 8
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camera.Orbit(-0.02)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camera.Orbit(0.02)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(math.Pow(0.9, wy))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging {
			g.camera.Pan(float64(x-g.dragX), float64(y-g.dragY))
		}
		g.dragging = true
		g.dragX, g.dragY = x, y
	} else {
		g.dragging = false
	}
}

// Draw renders grid, bodies and HUD from the settled positions.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.showGrid {
		g.grid.Draw(screen, g.camera)
	}
	g.painter.Draw(screen, g.registry, g.camera)

	bodies := g.registry.Bodies()
	drift := 0.0
	if e0 := g.initialEnergy; e0 != 0 {
		drift = (g.integ.Energy(bodies) - e0) / math.Abs(e0)
	}
	g.hud.Draw(screen, ui.Stats{
		Scene:       g.cfg.SceneName(),
		Bodies:      g.registry.Len(),
		Distance:    g.camera.Distance,
		EnergyDrift: drift,
		Momentum:    r2.Norm(g.integ.Momentum(bodies)),
		Paused:      g.paused,
	})
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	g.camera.SetViewport(g.cfg.Width, g.cfg.Height)
	return g.cfg.Width, g.cfg.Height
}

// frameDistance picks a starting camera distance that fits the whole
// scene in view with some margin.
func frameDistance(reg *core.Registry, p core.Params) float64 {
	far := 0.0
	for _, b := range reg.Bodies() {
		if d := r2.Norm(b.Pos); d > far {
			far = d
		}
	}
	d := 2.5 * far
	if d < p.MinCameraDistance {
		d = p.MinCameraDistance
	}
	if d > p.MaxCameraDistance {
		d = p.MaxCameraDistance
	}
	return d
}
