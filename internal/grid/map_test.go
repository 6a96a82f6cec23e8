package grid

import (
	"math"
	"math/rand"
	"testing"

	"gridsight/internal/fov"
)

func mustNew(t *testing.T, w, h int) *Map {
	t.Helper()
	m, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d,%d) failed: %v", w, h, err)
	}
	return m
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{-1, 10},
		{10, -1},
		{math.MaxInt, 2},
	} {
		if _, err := New(tc.w, tc.h); err == nil {
			t.Errorf("New(%d,%d) succeeded, want error", tc.w, tc.h)
		}
	}
}

func TestNewStartsClear(t *testing.T) {
	m := mustNew(t, 4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p := fov.Point{X: x, Y: y}
			if m.IsOpaque(p) {
				t.Errorf("cell %v opaque at start", p)
			}
			if m.IsVisible(p) {
				t.Errorf("cell %v visible at start", p)
			}
		}
	}
}

func TestOutOfBoundsPolicy(t *testing.T) {
	m := mustNew(t, 5, 5)
	outside := []fov.Point{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 5, Y: 0}, {X: 0, Y: 5},
		{X: -100, Y: -100}, {X: 1000, Y: 1000},
	}
	for _, p := range outside {
		if m.IsInBounds(p) {
			t.Errorf("IsInBounds(%v) = true, want false", p)
		}
		if !m.IsOpaque(p) {
			t.Errorf("IsOpaque(%v) = false, want true", p)
		}
		if m.IsVisible(p) {
			t.Errorf("IsVisible(%v) = true, want false", p)
		}
	}
}

func TestToggleOpaqueIsInvolution(t *testing.T) {
	m := mustNew(t, 5, 5)
	p := fov.Point{X: 2, Y: 3}
	m.ToggleOpaque(p)
	if !m.IsOpaque(p) {
		t.Fatalf("cell not opaque after one toggle")
	}
	m.ToggleOpaque(p)
	if m.IsOpaque(p) {
		t.Fatalf("cell opaque after two toggles")
	}
}

func TestClearVisible(t *testing.T) {
	m := mustNew(t, 6, 6)
	for _, p := range []fov.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 3, Y: 2}} {
		m.SetVisible(p)
	}
	m.ClearVisible()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if m.IsVisible(fov.Point{X: x, Y: y}) {
				t.Fatalf("cell (%d,%d) visible after ClearVisible", x, y)
			}
		}
	}
}

func TestSetVisibleOutOfBoundsIsNoOp(t *testing.T) {
	m := mustNew(t, 4, 4)
	before := m.Snapshot()
	m.SetVisible(fov.Point{X: -1, Y: 2})
	m.SetVisible(fov.Point{X: 4, Y: 0})
	m.SetVisible(fov.Point{X: 2, Y: 17})
	after := m.Snapshot()
	for i := range before.Visible {
		if before.Visible[i] != after.Visible[i] {
			t.Fatalf("visible plane changed at index %d", i)
		}
	}
}

func TestDistance(t *testing.T) {
	m := mustNew(t, 10, 10)
	got := m.Distance(fov.Point{X: 1, Y: 1}, fov.Point{X: 4, Y: 5})
	if got != 5 {
		t.Fatalf("Distance((1,1),(4,5)) = %v, want 5", got)
	}
	if d := m.Distance(fov.Point{X: 7, Y: 7}, fov.Point{X: 7, Y: 7}); d != 0 {
		t.Fatalf("Distance of identical points = %v, want 0", d)
	}
}

func TestScatterWallsStaysInBounds(t *testing.T) {
	m := mustNew(t, 8, 8)
	m.ScatterWalls(rand.New(rand.NewSource(7)), 200)
	count := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m.IsOpaque(fov.Point{X: x, Y: y}) {
				count++
			}
		}
	}
	if count == 0 {
		t.Fatalf("no walls after 200 scatter toggles")
	}
	m.ClearOpaque()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m.IsOpaque(fov.Point{X: x, Y: y}) {
				t.Fatalf("cell (%d,%d) opaque after ClearOpaque", x, y)
			}
		}
	}
}

func TestGenerateWallSegmentsRespectsExclusion(t *testing.T) {
	m := mustNew(t, 30, 30)
	keep := fov.Point{X: 15, Y: 15}
	m.GenerateWallSegments(rand.New(rand.NewSource(11)), SegmentConfig{
		Segments:          20,
		MinLen:            4,
		MaxLen:            12,
		ThicknessVariance: 1,
		KeepClear:         keep,
		ExclusionRadius:   4,
	})
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			p := fov.Point{X: x, Y: y}
			if !m.IsOpaque(p) {
				continue
			}
			dx, dy := x-keep.X, y-keep.Y
			if dx*dx+dy*dy < 16 {
				t.Fatalf("wall at %v inside exclusion zone", p)
			}
			if x == 0 || x == 29 || y == 0 || y == 29 {
				t.Fatalf("wall at %v on border", p)
			}
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	m := mustNew(t, 4, 4)
	p := fov.Point{X: 1, Y: 1}
	m.ToggleOpaque(p)
	m.SetVisible(p)
	snap := m.Snapshot()
	m.ToggleOpaque(p)
	m.ClearVisible()
	if !snap.IsOpaque(1, 1) || !snap.IsVisible(1, 1) {
		t.Fatalf("snapshot changed after mutating the live map")
	}
	if !snap.IsOpaque(-1, 0) {
		t.Fatalf("snapshot IsOpaque out of bounds = false, want true")
	}
	if snap.IsVisible(4, 4) {
		t.Fatalf("snapshot IsVisible out of bounds = true, want false")
	}
}
