// Package fov computes grid field of view by recursive shadowcasting.
//
// The sweep only sees the world through the Map interface, so any grid
// implementation exposing the four capabilities can be swept, and the
// sweep itself can be swapped out for another algorithm with the same
// signature.
package fov

// Point is an integer coordinate in grid index space.
type Point struct {
	X, Y int
}

// Map is the capability surface a visibility sweep requires. Coordinates
// outside the grid must report opaque and ignore SetVisible, which stops
// sight lines at the boundary without the sweep knowing where it is.
type Map interface {
	IsInBounds(p Point) bool
	IsOpaque(p Point) bool
	SetVisible(p Point)
	Distance(a, b Point) float64
}

// octants holds the transform rows that map the scanned octant onto the
// other seven.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{-1, 0, 0, 1},
	{0, 1, -1, 0},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{1, 0, 0, -1},
	{0, -1, 1, 0},
}

// Compute marks every cell of m within radius of origin that has an
// unobstructed sight line as visible. The origin itself is always
// marked. Radius bounds sight by Euclidean distance as reported by the
// map; a radius of zero or less leaves nothing visible beyond the
// origin cell.
func Compute(origin Point, radius int, m Map) {
	m.SetVisible(origin)
	for _, oct := range octants {
		castLight(m, origin, 1, 1.0, 0.0, radius, oct[0], oct[1], oct[2], oct[3])
	}
}

// castLight recursively explores one octant, narrowing the open slope
// window as opaque cells are encountered.
func castLight(m Map, origin Point, row int, startSlope, endSlope float64, radius, xx, xy, yx, yy int) {
	if startSlope < endSlope {
		return
	}
	maxDist := float64(radius)
	for i := row; i <= radius; i++ {
		blocked := false
		newStart := 0.0
		for dx := -i; dx <= 0; dx++ {
			dy := -i
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if rSlope > startSlope {
				continue
			}
			if lSlope < endSlope {
				break
			}
			p := Point{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}
			if m.IsInBounds(p) && m.Distance(origin, p) <= maxDist {
				m.SetVisible(p)
			}
			wall := m.IsOpaque(p)
			if blocked {
				if wall {
					newStart = rSlope
					continue
				}
				blocked = false
				startSlope = newStart
			} else if wall && i < radius {
				blocked = true
				castLight(m, origin, i+1, startSlope, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
