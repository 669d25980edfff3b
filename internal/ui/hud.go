//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var hudColor = color.RGBA{0xd0, 0xd6, 0xe0, 0xff}

// HUD renders the diagnostics overlay in the top-left corner.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Draw renders the stats snapshot.
func (h *HUD) Draw(dst *ebiten.Image, s Stats) {
	if h == nil || !h.visible {
		return
	}
	lines := []string{
		fmt.Sprintf("scene: %s  bodies: %d", s.Scene, s.Bodies),
		fmt.Sprintf("camera distance: %.3g Gm", s.Distance),
		fmt.Sprintf("energy drift: %+.2e  |p|: %.3g", s.EnergyDrift, s.Momentum),
	}
	if s.Paused {
		lines = append(lines, "paused  (space resumes, n single-steps)")
	}
	y := 16
	for _, line := range lines {
		text.Draw(dst, line, basicfont.Face7x13, 8, y, hudColor)
		y += 14
	}
}
