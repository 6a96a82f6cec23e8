// Package view maps screen-space pointer positions into grid index
// space and decides when cached visibility must be recomputed.
package view

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera is a tiled orthographic camera: it views a tilesX by tilesY
// region of world units centered on its position, regardless of window
// resolution. The demo keeps the camera at the world origin so the
// viewed region is exactly the grid.
type Camera struct {
	tilesX float64
	tilesY float64
	x      float64
	y      float64
}

// NewCamera constructs a camera viewing the given tile counts, placed
// at the world origin.
func NewCamera(tilesX, tilesY int) *Camera {
	return &Camera{tilesX: float64(tilesX), tilesY: float64(tilesY)}
}

// SetPosition moves the camera in world space.
func (c *Camera) SetPosition(x, y float64) {
	c.x, c.y = x, y
}

// Projection returns the world-to-NDC matrix.
func (c *Camera) Projection() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(2/c.tilesX, 2/c.tilesY)
	return g
}

// ProjectionInverse returns the NDC-to-view matrix.
func (c *Camera) ProjectionInverse() ebiten.GeoM {
	g := c.Projection()
	g.Invert()
	return g
}

// Transform returns the camera's world transform.
func (c *Camera) Transform() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(c.x, c.y)
	return g
}

// NDCToWorld composes the world transform with the inverse projection,
// yielding the matrix that unprojects normalized device coordinates.
func (c *Camera) NDCToWorld() ebiten.GeoM {
	g := c.ProjectionInverse()
	g.Concat(c.Transform())
	return g
}
