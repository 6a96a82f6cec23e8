package view

import (
	"testing"

	"gridsight/internal/fov"
	"gridsight/internal/grid"
)

func newTestController(t *testing.T) (*Controller, *grid.Map) {
	t.Helper()
	m, err := grid.New(30, 30)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return NewController(m, 5), m
}

func TestFirstTickComputes(t *testing.T) {
	c, m := newTestController(t)
	p := fov.Point{X: 15, Y: 15}
	if !c.Tick(p) {
		t.Fatalf("first Tick did not recompute")
	}
	if !m.IsVisible(p) {
		t.Fatalf("viewpoint cell not visible after first Tick")
	}
	vp, ok := c.Viewpoint()
	if !ok || vp != p {
		t.Fatalf("Viewpoint() = %v,%v, want %v,true", vp, ok, p)
	}
}

func TestUnchangedTickSkipsRecompute(t *testing.T) {
	c, _ := newTestController(t)
	p := fov.Point{X: 10, Y: 10}
	c.Tick(p)

	calls := 0
	c.SetSweep(func(fov.Point, int, fov.Map) { calls++ })
	for i := 0; i < 5; i++ {
		if c.Tick(p) {
			t.Fatalf("Tick %d recomputed without a change", i)
		}
	}
	if calls != 0 {
		t.Fatalf("sweep ran %d times without a change", calls)
	}
}

func TestCursorMoveRecomputes(t *testing.T) {
	c, _ := newTestController(t)
	c.Tick(fov.Point{X: 10, Y: 10})
	if !c.Tick(fov.Point{X: 11, Y: 10}) {
		t.Fatalf("Tick after cursor move did not recompute")
	}
}

func TestRadiusChangeRecomputes(t *testing.T) {
	c, _ := newTestController(t)
	p := fov.Point{X: 10, Y: 10}
	c.Tick(p)

	c.AdjustRadius(2)
	if c.Radius() != 7 {
		t.Fatalf("Radius() = %d after +2, want 7", c.Radius())
	}
	if !c.Tick(p) {
		t.Fatalf("Tick after radius change did not recompute")
	}
}

func TestZeroScrollDeltaDoesNotDirty(t *testing.T) {
	c, _ := newTestController(t)
	p := fov.Point{X: 10, Y: 10}
	c.Tick(p)

	c.AdjustRadius(0)
	if c.Radius() != 5 {
		t.Fatalf("Radius() = %d after zero delta, want 5", c.Radius())
	}
	if c.Tick(p) {
		t.Fatalf("zero scroll delta with a stationary cursor forced a recompute")
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	c, m := newTestController(t)
	p := fov.Point{X: 15, Y: 15}
	c.Tick(p)

	// A toggle under a stationary pointer goes stale until Invalidate.
	wall := fov.Point{X: 15, Y: 12}
	m.ToggleOpaque(wall)
	if c.Tick(p) {
		t.Fatalf("Tick recomputed without invalidation")
	}
	c.Invalidate()
	if _, ok := c.Viewpoint(); ok {
		t.Fatalf("Viewpoint still reported after Invalidate")
	}
	if !c.Tick(p) {
		t.Fatalf("Tick after Invalidate did not recompute")
	}
	if m.IsVisible(fov.Point{X: 15, Y: 10}) {
		t.Fatalf("cell behind the new wall still visible after recompute")
	}
}

func TestSweepSubstitution(t *testing.T) {
	c, m := newTestController(t)
	c.SetSweep(func(origin fov.Point, radius int, mm fov.Map) {
		// A trivially different algorithm: origin only.
		mm.SetVisible(origin)
	})
	p := fov.Point{X: 3, Y: 3}
	c.Tick(p)
	if !m.IsVisible(p) {
		t.Fatalf("substituted sweep did not run")
	}
	if m.IsVisible(fov.Point{X: 4, Y: 3}) {
		t.Fatalf("substituted sweep leaked the default behavior")
	}

	c.SetSweep(nil)
	c.Invalidate()
	c.Tick(p)
	if !m.IsVisible(fov.Point{X: 4, Y: 3}) {
		t.Fatalf("nil SetSweep did not restore the default sweep")
	}
}
