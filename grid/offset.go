package grid

import "math"

// Offset is an integer (x, y) displacement between two grids. Whether the
// unit is display pixels or grid cells is the owner's convention; the two
// are never mixed on one value.
type Offset struct {
	X, Y int
}

func (o Offset) Add(p Offset) Offset {
	return Offset{X: o.X + p.X, Y: o.Y + p.Y}
}

func (o Offset) Sub(p Offset) Offset {
	return Offset{X: o.X - p.X, Y: o.Y - p.Y}
}

// Scale multiplies both axes, e.g. converting grid cells to pixels.
func (o Offset) Scale(f int) Offset {
	return Offset{X: o.X * f, Y: o.Y * f}
}

// Dist is the Euclidean distance to p.
func (o Offset) Dist(p Offset) float64 {
	return math.Hypot(float64(o.X-p.X), float64(o.Y-p.Y))
}
