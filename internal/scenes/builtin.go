package scenes

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

// planet is one row of the hardcoded solar-system table. Orbit radius in
// gigameters, mass in Earth masses, radius in Earth radii.
type planet struct {
	name   string
	mass   float64
	radius float64
	orbit  float64
	color  color.RGBA
}

const (
	sunMass   = 333000
	sunRadius = 109
)

var planets = []planet{
	{"mercury", 0.055, 0.38, 57.9, color.RGBA{0xb5, 0xa7, 0x9a, 0xff}},
	{"venus", 0.815, 0.95, 108.2, color.RGBA{0xe6, 0xc2, 0x7a, 0xff}},
	{"earth", 1, 1, 149.6, color.RGBA{0x4f, 0x94, 0xcd, 0xff}},
	{"mars", 0.107, 0.53, 227.9, color.RGBA{0xc1, 0x55, 0x3d, 0xff}},
	{"jupiter", 317.8, 11.2, 778.5, color.RGBA{0xd9, 0xa0, 0x66, 0xff}},
	{"saturn", 95.2, 9.45, 1433.5, color.RGBA{0xe3, 0xd3, 0x9a, 0xff}},
	{"uranus", 14.5, 4.0, 2872.5, color.RGBA{0x9f, 0xd9, 0xd9, 0xff}},
	{"neptune", 17.1, 3.88, 4495.1, color.RGBA{0x46, 0x6b, 0xc9, 0xff}},
}

// Solar builds the Sun and the eight planets on circular counter-clockwise
// orbits. The seed is unused; the scene is fully determined.
func Solar(int64) (*core.Registry, core.Params, error) {
	p := core.DefaultParams()
	reg := core.NewRegistry()

	sun, err := core.NewBody("sun", sunMass, sunRadius, r2.Vec{}, r2.Vec{},
		color.RGBA{0xff, 0xd7, 0x00, 0xff})
	if err != nil {
		return nil, p, err
	}
	reg.Add(sun)

	for _, pl := range planets {
		pos := r2.Vec{X: pl.orbit}
		b, err := core.NewBody(pl.name, pl.mass, pl.radius, pos,
			circularVelocity(p.G, sunMass, r2.Vec{}, pos), pl.color)
		if err != nil {
			return nil, p, err
		}
		reg.Add(b)
	}
	return reg, p, nil
}

// Binary builds two comparable masses orbiting their barycenter. The seed
// is unused.
func Binary(int64) (*core.Registry, core.Params, error) {
	p := core.DefaultParams()
	p.Dt = 4
	reg := core.NewRegistry()

	const (
		m1  = 40000.0
		m2  = 10000.0
		sep = 400.0
	)

	// Each star sits on the line through the barycenter and moves with
	// the angular rate of the pair, omega = sqrt(G*(m1+m2)/sep^3).
	omega := math.Sqrt(p.G * (m1 + m2) / (sep * sep * sep))
	distA := sep * m2 / (m1 + m2)
	distB := sep * m1 / (m1 + m2)

	a, err := core.NewBody("alpha", m1, 60, r2.Vec{X: -distA},
		r2.Vec{Y: -omega * distA}, color.RGBA{0xff, 0xb0, 0x50, 0xff})
	if err != nil {
		return nil, p, err
	}
	b, err := core.NewBody("beta", m2, 30, r2.Vec{X: distB},
		r2.Vec{Y: omega * distB}, color.RGBA{0xff, 0x60, 0x60, 0xff})
	if err != nil {
		return nil, p, err
	}
	reg.Add(a)
	reg.Add(b)
	return reg, p, nil
}

// Cluster builds a heavy central body with a seeded random disk of minor
// bodies on circular orbits. The same seed reproduces the same disk.
func Cluster(seed int64) (*core.Registry, core.Params, error) {
	p := core.DefaultParams()
	reg := core.NewRegistry()
	rng := core.NewRNG(seed)

	sun, err := core.NewBody("core", sunMass, sunRadius, r2.Vec{}, r2.Vec{},
		color.RGBA{0xff, 0xd7, 0x00, 0xff})
	if err != nil {
		return nil, p, err
	}
	reg.Add(sun)

	const minors = 64
	for i := 0; i < minors; i++ {
		dist := rng.Range(150, 4500)
		theta := rng.Angle()
		pos := r2.Vec{X: dist * math.Cos(theta), Y: dist * math.Sin(theta)}

		shade := uint8(120 + rng.Float64()*120)
		b, err := core.NewBody("", rng.Range(1e-3, 20), rng.Range(0.2, 12),
			pos, circularVelocity(p.G, sunMass, r2.Vec{}, pos),
			color.RGBA{shade, shade, uint8(160 + rng.Float64()*90), 0xff})
		if err != nil {
			return nil, p, err
		}
		reg.Add(b)
	}
	return reg, p, nil
}

func init() {
	Register("solar", Solar)
	Register("binary", Binary)
	Register("cluster", Cluster)
}
