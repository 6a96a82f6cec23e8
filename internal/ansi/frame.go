package ansi

import (
	"fmt"
	"strings"

	"gridsight/internal/fov"
	"gridsight/internal/grid"
)

// Basic ANSI color codes used by the frame renderer.
const (
	colGreen  = 32
	colWhite  = 37
	colCyan   = 96
	colGrey   = 90
	colYellow = 93
)

// RenderFrame draws the grid as glyphs with cursor-addressed writes:
// '#' for visible walls, '.' for visible floor, '@' for the viewpoint,
// blanks elsewhere. The top screen row shows the highest grid y so the
// world's y axis points up. A status line follows the grid.
func RenderFrame(snap grid.Snapshot, viewpoint fov.Point, hasViewpoint bool, radius int) string {
	var sb strings.Builder
	for row := 0; row < snap.Height; row++ {
		y := snap.Height - 1 - row
		sb.WriteString(MoveTo(row+1, 1))
		for x := 0; x < snap.Width; x++ {
			switch {
			case hasViewpoint && viewpoint.X == x && viewpoint.Y == y:
				sb.WriteString(Fg(colCyan))
				sb.WriteByte('@')
			case snap.IsVisible(x, y) && snap.IsOpaque(x, y):
				sb.WriteString(Fg(colGreen))
				sb.WriteByte('#')
			case snap.IsVisible(x, y):
				sb.WriteString(Fg(colWhite))
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(Reset)
	}
	sb.WriteString(MoveTo(snap.Height+1, 1))
	sb.WriteString(Fg(colYellow))
	sb.WriteString(fmt.Sprintf("radius %d", radius))
	sb.WriteString(Fg(colGrey))
	sb.WriteString("  arrows/hjkl move - space toggle wall - +/- range - n walls - q quit")
	sb.WriteString(CSI + "K")
	sb.WriteString(Reset)
	return sb.String()
}
