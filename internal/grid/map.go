// Package grid stores the dual-plane boolean state of the visibility
// demo: an opaque plane mutated by user toggles and a visible plane
// owned by the field-of-view sweep.
package grid

import (
	"fmt"
	"math"

	"gridsight/internal/fov"
)

// Map is a fixed-size rectangular grid with an opaque and a visible
// plane. Coordinates outside the grid are treated as opaque and not
// visible without being stored. Map satisfies fov.Map.
type Map struct {
	width   int
	height  int
	opaque  []bool
	visible []bool
}

// New allocates a Map with all cells transparent and hidden. Dimensions
// must be positive and small enough that width*height fits an int.
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("grid dimensions %dx%d overflow", width, height)
	}
	return &Map{
		width:   width,
		height:  height,
		opaque:  make([]bool, width*height),
		visible: make([]bool, width*height),
	}, nil
}

// Width returns the grid width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *Map) Height() int { return m.height }

func (m *Map) index(p fov.Point) int { return p.Y*m.width + p.X }

// IsInBounds reports whether p lies within the grid.
func (m *Map) IsInBounds(p fov.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// IsOpaque reports whether p blocks sight. Out-of-bounds coordinates
// are always opaque.
func (m *Map) IsOpaque(p fov.Point) bool {
	if !m.IsInBounds(p) {
		return true
	}
	return m.opaque[m.index(p)]
}

// ToggleOpaque flips the opaque bit at p. The caller must check
// IsInBounds first; this is the one mutator that does not guard.
func (m *Map) ToggleOpaque(p fov.Point) {
	i := m.index(p)
	m.opaque[i] = !m.opaque[i]
}

// IsVisible reports whether p was marked by the last sweep.
// Out-of-bounds coordinates are never visible.
func (m *Map) IsVisible(p fov.Point) bool {
	if !m.IsInBounds(p) {
		return false
	}
	return m.visible[m.index(p)]
}

// SetVisible marks p visible. Out-of-bounds coordinates are ignored.
// This is the only mutator a visibility sweep may call.
func (m *Map) SetVisible(p fov.Point) {
	if !m.IsInBounds(p) {
		return
	}
	m.visible[m.index(p)] = true
}

// ClearVisible resets the entire visible plane.
func (m *Map) ClearVisible() {
	for i := range m.visible {
		m.visible[i] = false
	}
}

// ClearOpaque resets the entire opaque plane.
func (m *Map) ClearOpaque() {
	for i := range m.opaque {
		m.opaque[i] = false
	}
}

// Distance returns the Euclidean distance between two grid coordinates.
func (m *Map) Distance(a, b fov.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

var _ fov.Map = (*Map)(nil)
