package grid

import "math"

// Line returns the Bresenham path from a to b, excluding a and including b.
// Levels are interpolated along the planar path; a purely vertical line
// steps one level at a time.
func Line(a, b Point) []Point {
	return LineT(a, b, 0)
}

// LineT is Line with an explicit starting error term. Different t values
// select different, equally valid paths between the same endpoints.
func LineT(a, b Point, t int) []Point {
	flat := line2D(a, b, t)
	dz := b.Z - a.Z
	if dz == 0 {
		for i := range flat {
			flat[i].Z = a.Z
		}
		return flat
	}
	if len(flat) == 0 {
		out := make([]Point, 0, abs(dz))
		for z := a.Z + Sign(dz); ; z += Sign(dz) {
			out = append(out, Point{a.X, a.Y, z})
			if z == b.Z {
				break
			}
		}
		return out
	}
	n := len(flat)
	for i := range flat {
		flat[i].Z = a.Z + int(math.Round(float64(dz*(i+1))/float64(n)))
	}
	return flat
}

func line2D(a, b Point, t int) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	sx, sy := Sign(dx), Sign(dy)
	ax, ay := abs(dx)*2, abs(dy)*2
	out := make([]Point, 0, max(abs(dx), abs(dy)))
	cur := Point{X: a.X, Y: a.Y}

	switch {
	case ax == ay:
		for cur.X != b.X {
			cur.X += sx
			cur.Y += sy
			out = append(out, cur)
		}
	case ax > ay:
		for cur.X != b.X {
			if t > 0 {
				cur.Y += sy
				t -= ax
			}
			cur.X += sx
			t += ay
			out = append(out, cur)
		}
	default:
		for cur.Y != b.Y {
			if t > 0 {
				cur.X += sx
				t -= ay
			}
			cur.Y += sy
			t += ax
			out = append(out, cur)
		}
	}
	return out
}
