package view

import (
	"math"

	"gridsight/internal/fov"
)

// ScreenToWorld converts a screen-space pointer position to a world
// position through cam. Screen coordinates have their origin at the
// top-left of a winW by winH viewport. The second return is false when
// the pointer's normalized device coordinates fall outside [-1,1) on
// either axis, which also covers pointer positions outside the window.
func ScreenToWorld(cam *Camera, winW, winH int, sx, sy float64) (float64, float64, bool) {
	if winW <= 0 || winH <= 0 {
		return 0, 0, false
	}
	ndcX := sx/float64(winW)*2 - 1
	ndcY := sy/float64(winH)*2 - 1
	if ndcX < -1 || ndcX >= 1 || ndcY < -1 || ndcY >= 1 {
		return 0, 0, false
	}
	// Screen y grows downward, world y upward.
	m := cam.NDCToWorld()
	wx, wy := m.Apply(ndcX, -ndcY)
	return wx, wy, true
}

// WorldToGrid maps a world position to a grid index. The grid is
// centered on the world origin, so flooring re-centers by half the
// grid dimensions. No bounds check is performed; consumers validate
// with IsInBounds.
func WorldToGrid(gridW, gridH int, wx, wy float64) fov.Point {
	return fov.Point{
		X: int(math.Floor(wx)) + gridW/2,
		Y: int(math.Floor(wy)) + gridH/2,
	}
}

// ScrollNotches converts a fractional wheel delta into whole notches,
// rounding fractions up toward their magnitude.
func ScrollNotches(delta float64) int {
	switch {
	case delta > 0:
		return int(math.Ceil(delta))
	case delta < 0:
		return int(math.Floor(delta))
	}
	return 0
}
