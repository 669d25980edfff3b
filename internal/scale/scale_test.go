package scale

import (
	"image/color"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"orrery/internal/core"
)

func testMapper() Mapper {
	return NewMapper(core.DefaultParams())
}

func TestBaseScaleBoundaries(t *testing.T) {
	m := testMapper()
	if got := m.BaseScale(m.MinDistance); got != m.BaseMin {
		t.Fatalf("BaseScale(min distance) = %v, want %v", got, m.BaseMin)
	}
	if got := m.BaseScale(m.MaxDistance); got != m.BaseMax {
		t.Fatalf("BaseScale(max distance) = %v, want %v", got, m.BaseMax)
	}
}

func TestBaseScaleClampsOutOfRange(t *testing.T) {
	m := testMapper()
	if got := m.BaseScale(0); got != m.BaseMin {
		t.Fatalf("BaseScale below range = %v, want clamp to %v", got, m.BaseMin)
	}
	if got := m.BaseScale(m.MaxDistance * 1e6); got != m.BaseMax {
		t.Fatalf("BaseScale above range = %v, want clamp to %v", got, m.BaseMax)
	}
}

func TestRelativeScaleEndpoints(t *testing.T) {
	m := testMapper()
	const logrMin, logrMax = -1.0, 2.0

	distances := []float64{m.MinDistance, 5000, 2.5e5, m.MaxDistance}
	for _, d := range distances {
		if got := m.RelativeScale(d, logrMin, logrMin, logrMax); got != 1 {
			t.Fatalf("d=%v: smallest body scale = %v, want 1", d, got)
		}

		// The largest body lands exactly on the distance-dependent ratio.
		x := m.RatioMin + (m.RatioMax-m.RatioMin)*m.distanceT(d)
		if got := m.RelativeScale(d, logrMax, logrMin, logrMax); !scalar.EqualWithinAbsOrRel(got, x, 1e-12, 1e-12) {
			t.Fatalf("d=%v: largest body scale = %v, want %v", d, got, x)
		}
	}
}

func TestRelativeScaleDegenerateRange(t *testing.T) {
	m := testMapper()
	for _, d := range []float64{m.MinDistance, 1234, m.MaxDistance} {
		if got := m.RelativeScale(d, 0.7, 0.7, 0.7); got != 1 {
			t.Fatalf("d=%v: degenerate log-radius range gave %v, want exactly 1", d, got)
		}
	}
}

func TestRenderScaleIsProduct(t *testing.T) {
	m := testMapper()
	b, err := core.NewBody("probe", 1, 10, r2.Vec{}, r2.Vec{}, color.RGBA{})
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}

	const d, logrMin, logrMax = 7500.0, -1.0, 2.0
	want := m.BaseScale(d) * m.RelativeScale(d, b.LogRadius(), logrMin, logrMax)
	if got := m.RenderScale(d, b, logrMin, logrMax); got != want {
		t.Fatalf("RenderScale = %v, want BaseScale*RelativeScale = %v", got, want)
	}
}
