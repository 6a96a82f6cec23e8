package grid

// Snapshot is an immutable copy of both planes at a point in time. The
// live Map is confined to a single owner, so cross-goroutine readers
// such as the debug HTTP server work from snapshots instead.
type Snapshot struct {
	Width   int
	Height  int
	Opaque  []bool
	Visible []bool
}

// Snapshot copies the current plane contents.
func (m *Map) Snapshot() Snapshot {
	s := Snapshot{
		Width:   m.width,
		Height:  m.height,
		Opaque:  make([]bool, len(m.opaque)),
		Visible: make([]bool, len(m.visible)),
	}
	copy(s.Opaque, m.opaque)
	copy(s.Visible, m.visible)
	return s
}

// IsOpaque mirrors the live map's boundary policy.
func (s Snapshot) IsOpaque(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return true
	}
	return s.Opaque[y*s.Width+x]
}

// IsVisible mirrors the live map's boundary policy.
func (s Snapshot) IsVisible(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.Visible[y*s.Width+x]
}
