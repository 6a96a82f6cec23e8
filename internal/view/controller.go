package view

import (
	"gridsight/internal/fov"
)

// Sweep is the external visibility computation contract. fov.Compute
// satisfies it; any conforming algorithm can be substituted.
type Sweep func(origin fov.Point, radius int, m fov.Map)

// Grid is the storage surface the controller drives: the sweep
// capabilities plus resetting the visible plane between computations.
type Grid interface {
	fov.Map
	ClearVisible()
}

// Controller tracks the last computed viewpoint and radius and
// recomputes visibility only when one of them changed. A zero value is
// not usable; construct with NewController.
type Controller struct {
	grid       Grid
	sweep      Sweep
	radius     int
	lastPos    fov.Point
	lastRadius int
	computed   bool
}

// NewController returns a controller in the never-computed state with
// the given live radius, using fov.Compute as its sweep.
func NewController(g Grid, radius int) *Controller {
	return &Controller{grid: g, sweep: fov.Compute, radius: radius}
}

// SetSweep replaces the visibility routine. A nil sweep restores the
// default.
func (c *Controller) SetSweep(s Sweep) {
	if s == nil {
		s = fov.Compute
	}
	c.sweep = s
}

// Tick runs the change check for the pointer's current grid position,
// clearing and recomputing the visible plane when the position or the
// radius differs from the last computation, or when none has happened
// yet. It reports whether a recompute ran. Hosts skip Tick entirely on
// frames without a pointer position, leaving the cached state intact.
func (c *Controller) Tick(p fov.Point) bool {
	if c.computed && p == c.lastPos && c.radius == c.lastRadius {
		return false
	}
	c.grid.ClearVisible()
	c.sweep(p, c.radius, c.grid)
	c.lastPos = p
	c.lastRadius = c.radius
	c.computed = true
	return true
}

// AdjustRadius applies a scroll delta to the live radius. A zero delta
// is a no-op and never forces a recompute by itself.
func (c *Controller) AdjustRadius(delta int) {
	if delta == 0 {
		return
	}
	c.radius += delta
}

// Radius returns the live view radius.
func (c *Controller) Radius() int { return c.radius }

// Viewpoint returns the grid position of the last computed sweep, and
// false if no sweep has run yet.
func (c *Controller) Viewpoint() (fov.Point, bool) {
	return c.lastPos, c.computed
}

// Invalidate drops the cached position so the next Tick recomputes,
// for example after toggling a wall under a stationary pointer.
func (c *Controller) Invalidate() {
	c.computed = false
}
