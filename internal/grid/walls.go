package grid

import (
	"math/rand"

	"gridsight/internal/fov"
)

// SegmentConfig controls procedural wall segment generation.
type SegmentConfig struct {
	Segments          int
	MinLen            int
	MaxLen            int
	ThicknessVariance int
	// KeepClear and ExclusionRadius carve out a free zone, typically
	// around the expected viewpoint.
	KeepClear       fov.Point
	ExclusionRadius int
}

// ScatterWalls toggles opacity at n random in-bounds cells. Repeated
// hits on the same cell toggle it back.
func (m *Map) ScatterWalls(rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		m.ToggleOpaque(fov.Point{X: rng.Intn(m.width), Y: rng.Intn(m.height)})
	}
}

// GenerateWallSegments replaces the opaque plane with randomly placed
// straight wall segments of varying length and thickness, keeping the
// outermost ring and the configured exclusion zone clear.
func (m *Map) GenerateWallSegments(rng *rand.Rand, cfg SegmentConfig) {
	m.ClearOpaque()
	if m.width < 5 || m.height < 5 {
		return
	}
	for s := 0; s < cfg.Segments; s++ {
		lengthRange := cfg.MaxLen - cfg.MinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := cfg.MinLen + rng.Intn(lengthRange)
		thickness := 0
		if cfg.ThicknessVariance > 0 {
			thickness = rng.Intn(cfg.ThicknessVariance + 1)
		}
		horizontal := rng.Intn(2) == 0
		x := rng.Intn(m.width-4) + 2
		y := rng.Intn(m.height-4) + 2
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		perpX, perpY := dy, dx
		cx, cy := x, y
		for l := 0; l < length; l++ {
			if cx <= 1 || cx >= m.width-1 || cy <= 1 || cy >= m.height-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				m.trySetWall(fov.Point{X: cx + perpX*t, Y: cy + perpY*t}, cfg)
			}
			cx += dx
			cy += dy
		}
	}
}

// trySetWall marks a cell opaque unless it touches the border or falls
// inside the exclusion zone.
func (m *Map) trySetWall(p fov.Point, cfg SegmentConfig) {
	if p.X <= 1 || p.X >= m.width-1 || p.Y <= 1 || p.Y >= m.height-1 {
		return
	}
	ddx := p.X - cfg.KeepClear.X
	ddy := p.Y - cfg.KeepClear.Y
	if ddx*ddx+ddy*ddy < cfg.ExclusionRadius*cfg.ExclusionRadius {
		return
	}
	m.opaque[m.index(p)] = true
}
