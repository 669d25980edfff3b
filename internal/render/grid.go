package render

import (
	"fmt"
	"math"
)

// GridSpacing returns the power-of-ten world spacing whose on-screen size
// is at least minPixels at the given zoom, so grid density stays steady
// while the camera sweeps orders of magnitude.
func GridSpacing(unitsPerPixel, minPixels float64) float64 {
	if unitsPerPixel <= 0 || minPixels <= 0 {
		return 1
	}
	return math.Pow(10, math.Ceil(math.Log10(unitsPerPixel*minPixels)))
}

// SpacingLabel formats a grid spacing for the on-screen legend.
func SpacingLabel(spacing float64) string {
	return fmt.Sprintf("%.0g Gm", spacing)
}
