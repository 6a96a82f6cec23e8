package ansi

import (
	"strings"
	"testing"

	"gridsight/internal/fov"
	"gridsight/internal/grid"
)

func TestEscapeSequences(t *testing.T) {
	if got := MoveTo(1, 1); got != "\x1b[1;1H" {
		t.Errorf("MoveTo(1,1) = %q", got)
	}
	if got := MoveTo(12, 34); got != "\x1b[12;34H" {
		t.Errorf("MoveTo(12,34) = %q", got)
	}
	if got := Fg(32); got != "\x1b[32m" {
		t.Errorf("Fg(32) = %q", got)
	}
	if ClearScreen() != "\x1b[2J" || EnableAltScreen() != "\x1b[?1049h" {
		t.Errorf("unexpected control sequences")
	}
}

func TestRenderFrame(t *testing.T) {
	m, err := grid.New(5, 4)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	wall := fov.Point{X: 1, Y: 2}
	m.ToggleOpaque(wall)
	m.SetVisible(wall)
	m.SetVisible(fov.Point{X: 2, Y: 2})
	vp := fov.Point{X: 3, Y: 2}
	m.SetVisible(vp)

	frame := RenderFrame(m.Snapshot(), vp, true, 7)

	if !strings.Contains(frame, "#") {
		t.Errorf("frame missing wall glyph")
	}
	if !strings.Contains(frame, ".") {
		t.Errorf("frame missing floor glyph")
	}
	if !strings.Contains(frame, "@") {
		t.Errorf("frame missing viewpoint glyph")
	}
	if !strings.Contains(frame, "radius 7") {
		t.Errorf("frame missing status line")
	}
	// Grid y=2 renders on screen row 2 of 4 (top row shows y=3).
	if !strings.Contains(frame, MoveTo(2, 1)) {
		t.Errorf("frame missing cursor address for the populated row")
	}
}

func TestRenderFrameHiddenCellsBlank(t *testing.T) {
	m, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	m.ToggleOpaque(fov.Point{X: 1, Y: 1}) // opaque but not visible
	frame := RenderFrame(m.Snapshot(), fov.Point{}, false, 5)
	if strings.Contains(frame, "#") || strings.Contains(frame, ".") || strings.Contains(frame, "@") {
		t.Errorf("hidden cells rendered glyphs: %q", frame)
	}
}
