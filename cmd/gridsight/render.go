package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"gridsight/internal/fov"
)

// Cell colors (RGB). Cells outside the current field of view stay black.
var (
	colorWall      = [3]byte{60, 200, 90}
	colorFloor     = [3]byte{185, 185, 185}
	colorViewpoint = [3]byte{235, 70, 60}
)

// Draw renders the grid as filled cell blocks plus the overlay text.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.grid.Width()
	h := g.grid.Height()
	logicalW := w * cellPixels
	logicalH := h * cellPixels
	if len(g.pixels) != logicalW*logicalH*4 {
		g.pixels = make([]byte, logicalW*logicalH*4)
	}
	clearPixels(g.pixels)

	vp, hasVP := g.ctrl.Viewpoint()
	for y := 0; y < h; y++ {
		// The top pixel row shows the highest grid y.
		rowTop := (h - 1 - y) * cellPixels
		for x := 0; x < w; x++ {
			p := fov.Point{X: x, Y: y}
			var c [3]byte
			switch {
			case hasVP && p == vp:
				c = colorViewpoint
			case g.grid.IsVisible(p) && g.grid.IsOpaque(p):
				c = colorWall
			case g.grid.IsVisible(p):
				c = colorFloor
			default:
				continue
			}
			g.fillCell(logicalW, x*cellPixels, rowTop, c)
		}
	}
	screen.WritePixels(g.pixels)

	overlay := "Click to toggle wall\nScroll to change view range\nN for new walls"
	if *debugFlag {
		overlay += fmt.Sprintf("\nFPS: %.1f TPS: %.1f\nRadius: %d\nRecomputes: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.ctrl.Radius(), g.recomputes)
		if hasVP {
			overlay += fmt.Sprintf("\nViewpoint: (%d,%d)", vp.X, vp.Y)
		}
	}
	ebitenutil.DebugPrint(screen, overlay)
}

// fillCell paints one cell block into the pixel buffer.
func (g *Game) fillCell(logicalW, px, py int, c [3]byte) {
	for dy := 0; dy < cellPixels; dy++ {
		base := ((py+dy)*logicalW + px) * 4
		for dx := 0; dx < cellPixels; dx++ {
			o := base + dx*4
			g.pixels[o] = c[0]
			g.pixels[o+1] = c[1]
			g.pixels[o+2] = c[2]
			g.pixels[o+3] = 255
		}
	}
}

// clearPixels resets the buffer to opaque black for the next frame.
func clearPixels(p []byte) {
	for i := 0; i < len(p); i += 4 {
		p[i] = 0
		p[i+1] = 0
		p[i+2] = 0
		p[i+3] = 255
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.grid.Width() * cellPixels, g.grid.Height() * cellPixels
}
