package main

import (
	"math/rand"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridsight/internal/debughttp"
	"gridsight/internal/fov"
	"gridsight/internal/grid"
	"gridsight/internal/view"
)

// Game wires the grid, controller, and camera into the Ebiten loop.
type Game struct {
	grid *grid.Map
	ctrl *view.Controller
	cam  *view.Camera
	rng  *rand.Rand

	pixels     []byte
	recomputes uint64

	// published holds the latest state snapshot for the debug HTTP
	// server; nil when -http is not set.
	published *atomic.Pointer[debughttp.State]
}

// newGame constructs a fully initialized Game.
func newGame(gridW, gridH, radius int, seed int64) (*Game, error) {
	m, err := grid.New(gridW, gridH)
	if err != nil {
		return nil, err
	}
	g := &Game{
		grid: m,
		ctrl: view.NewController(m, radius),
		cam:  view.NewCamera(gridW, gridH),
		rng:  rand.New(rand.NewSource(seed)),
	}
	g.generateWalls()
	return g, nil
}

// generateWalls populates the opaque plane according to the wall flags.
func (g *Game) generateWalls() {
	g.grid.ClearOpaque()
	if *segmentWallsFlag {
		g.grid.GenerateWallSegments(g.rng, grid.SegmentConfig{
			Segments:          segmentCount,
			MinLen:            segmentMinLen,
			MaxLen:            segmentMaxLen,
			ThicknessVariance: segmentThickness,
			KeepClear:         fov.Point{X: g.grid.Width() / 2, Y: g.grid.Height() / 2},
			ExclusionRadius:   segmentExclusionRad,
		})
	} else {
		g.grid.ScatterWalls(g.rng, *scatterFlag)
	}
	g.ctrl.Invalidate()
}

// Update runs one tick: wheel input, wall toggles, the coordinate
// pipeline, and the change-driven visibility recompute.
func (g *Game) Update() error {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.ctrl.AdjustRadius(view.ScrollNotches(wy))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.generateWalls()
	}

	mx, my := ebiten.CursorPosition()
	winW := g.grid.Width() * cellPixels
	winH := g.grid.Height() * cellPixels
	// Sample the pixel center so the edge rows resolve to edge cells.
	wx, wy, ok := view.ScreenToWorld(g.cam, winW, winH, float64(mx)+0.5, float64(my)+0.5)
	if ok {
		p := view.WorldToGrid(g.grid.Width(), g.grid.Height(), wx, wy)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.grid.IsInBounds(p) {
			g.grid.ToggleOpaque(p)
			g.ctrl.Invalidate()
		}
		if g.ctrl.Tick(p) {
			g.recomputes++
		}
	}

	if g.published != nil {
		g.published.Store(g.currentState())
	}
	return nil
}

// currentState snapshots the demo for the debug HTTP server.
func (g *Game) currentState() *debughttp.State {
	vp, hasVP := g.ctrl.Viewpoint()
	return &debughttp.State{
		Grid:         g.grid.Snapshot(),
		Radius:       g.ctrl.Radius(),
		Viewpoint:    vp,
		HasViewpoint: hasVP,
	}
}
