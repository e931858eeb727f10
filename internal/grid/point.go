package grid

import "fmt"

// Point is a cell coordinate. Z is the vertical level.
type Point struct {
	X, Y, Z int
}

// P is shorthand for a point on level 0.
func P(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Scale multiplies every component by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k, p.Z * k} }

// XY drops the level.
func (p Point) XY() Point { return Point{X: p.X, Y: p.Y} }

// Abs returns the component-wise absolute value.
func (p Point) Abs() Point { return Point{abs(p.X), abs(p.Y), abs(p.Z)} }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Neighbors8 are the planar offsets around a cell.
var Neighbors8 = [8]Point{
	{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0},
	{1, -1, 0}, {-1, 1, 0}, {-1, -1, 0}, {1, 1, 0},
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
