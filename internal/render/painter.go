//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"orrery/internal/core"
	"orrery/internal/scale"
)

// BodyPainter draws every body as a filled circle whose size comes from
// the scale mapper, never from the true physical radius.
type BodyPainter struct {
	mapper scale.Mapper
}

// NewBodyPainter wraps a mapper for per-frame drawing.
func NewBodyPainter(m scale.Mapper) *BodyPainter {
	return &BodyPainter{mapper: m}
}

// Draw renders the registry through the camera. The log-radius extrema
// are reduced once per frame, not per body.
func (p *BodyPainter) Draw(dst *ebiten.Image, reg *core.Registry, cam *Camera) {
	logrMin, logrMax := reg.LogRadiusRange()
	upp := cam.UnitsPerPixel()
	w, h := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())

	for _, b := range reg.Bodies() {
		x, y := cam.WorldToScreen(b.Pos)
		rPix := p.mapper.RenderScale(cam.Distance, b, logrMin, logrMax) / upp
		if x+rPix < 0 || x-rPix > w || y+rPix < 0 || y-rPix > h {
			continue
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(rPix), b.Color, true)
	}
}

var (
	gridLineColor = color.RGBA{0x2a, 0x2f, 0x3a, 0xff}
	gridTextColor = color.RGBA{0x6a, 0x72, 0x84, 0xff}
)

// Grid draws the adaptive distance grid with a spacing legend.
type Grid struct {
	minPixels float64
}

// NewGrid builds a grid that keeps lines at least minPixels apart.
func NewGrid(minPixels float64) *Grid {
	if minPixels <= 0 {
		minPixels = 80
	}
	return &Grid{minPixels: minPixels}
}

// Draw strokes world-axis-aligned grid lines through the camera transform
// and labels the current spacing in the corner.
func (g *Grid) Draw(dst *ebiten.Image, cam *Camera) {
	upp := cam.UnitsPerPixel()
	spacing := GridSpacing(upp, g.minPixels)

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	// Cover the view's diagonal so rotated lines still span the screen.
	half := 0.5 * upp * math.Hypot(float64(w), float64(h))
	x0 := math.Floor((cam.Center.X-half)/spacing) * spacing
	y0 := math.Floor((cam.Center.Y-half)/spacing) * spacing

	for x := x0; x <= cam.Center.X+half; x += spacing {
		g.line(dst, cam, x, cam.Center.Y-half, x, cam.Center.Y+half)
	}
	for y := y0; y <= cam.Center.Y+half; y += spacing {
		g.line(dst, cam, cam.Center.X-half, y, cam.Center.X+half, y)
	}

	text.Draw(dst, SpacingLabel(spacing), basicfont.Face7x13, 8, h-8, gridTextColor)
}

func (g *Grid) line(dst *ebiten.Image, cam *Camera, wx0, wy0, wx1, wy1 float64) {
	x0, y0 := cam.WorldToScreen(vec(wx0, wy0))
	x1, y1 := cam.WorldToScreen(vec(wx1, wy1))
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridLineColor, false)
}
