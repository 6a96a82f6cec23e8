// Package termui runs the visibility demo on a tcell screen, close in
// spirit to the original ascii-terminal rendition: '#' for visible
// walls, '.' for visible floor, nothing elsewhere.
package termui

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsight/internal/fov"
	"gridsight/internal/grid"
	"gridsight/internal/view"
)

const tickInterval = 16 * time.Millisecond

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// App owns the demo state for one terminal session. The grid viewport
// occupies the top-left gridW by gridH cells of the screen; one
// terminal cell maps to one grid cell.
type App struct {
	screen  tcell.Screen
	grid    *grid.Map
	ctrl    *view.Controller
	cam     *view.Camera
	rng     *rand.Rand
	scatter int

	pointer     fov.Point
	hasPointer  bool
	lastButtons tcell.ButtonMask
	dirty       bool
}

// New builds an App on an initialized screen and enables mouse
// reporting.
func New(screen tcell.Screen, gridW, gridH, radius, scatter int, seed int64) (*App, error) {
	m, err := grid.New(gridW, gridH)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	m.ScatterWalls(rng, scatter)
	a := &App{
		screen:  screen,
		grid:    m,
		ctrl:    view.NewController(m, radius),
		cam:     view.NewCamera(gridW, gridH),
		rng:     rng,
		scatter: scatter,
		dirty:   true,
	}
	screen.EnableMouse()
	return a, nil
}

// Run drives the event and tick loop until the user quits.
func (a *App) Run() error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

// tick runs one frame: the change-driven recompute, then a redraw when
// anything changed.
func (a *App) tick() {
	if a.hasPointer && a.ctrl.Tick(a.pointer) {
		a.dirty = true
	}
	if a.dirty {
		a.draw()
		a.dirty = false
	}
}

// handleEvent reacts to one input event; false means quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
			a.grid.ClearOpaque()
			a.grid.ScatterWalls(a.rng, a.scatter)
			a.ctrl.Invalidate()
			a.dirty = true
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

// handleMouse updates the pointer through the coordinate pipeline and
// applies wheel and click input.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		a.ctrl.AdjustRadius(1)
	}
	if buttons&tcell.WheelDown != 0 {
		a.ctrl.AdjustRadius(-1)
	}

	mx, my := ev.Position()
	// Sample the cell center so every viewport cell maps cleanly.
	wx, wy, ok := view.ScreenToWorld(a.cam, a.grid.Width(), a.grid.Height(),
		float64(mx)+0.5, float64(my)+0.5)
	a.hasPointer = ok
	if ok {
		a.pointer = view.WorldToGrid(a.grid.Width(), a.grid.Height(), wx, wy)
	}

	pressed := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	a.lastButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown)
	if pressed && ok && a.grid.IsInBounds(a.pointer) {
		a.grid.ToggleOpaque(a.pointer)
		a.ctrl.Invalidate()
		a.dirty = true
	}
}

// draw repaints the grid viewport and status line.
func (a *App) draw() {
	a.screen.Clear()
	w, h := a.grid.Width(), a.grid.Height()
	for row := 0; row < h; row++ {
		y := h - 1 - row
		for x := 0; x < w; x++ {
			p := fov.Point{X: x, Y: y}
			switch {
			case a.grid.IsVisible(p) && a.grid.IsOpaque(p):
				a.screen.SetContent(x, row, '#', nil, styleWall)
			case a.grid.IsVisible(p):
				a.screen.SetContent(x, row, '.', nil, styleFloor)
			}
		}
	}
	status := []rune("radius " + strconv.Itoa(a.ctrl.Radius()))
	for i, r := range status {
		a.screen.SetContent(i, h, r, nil, styleStatus)
	}
	help := []rune("  point to look - click toggle wall - scroll view range - n walls - q quit")
	for i, r := range help {
		a.screen.SetContent(len(status)+i, h, r, nil, styleHelp)
	}
	a.screen.Show()
}
