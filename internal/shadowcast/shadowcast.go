// Package shadowcast implements recursive shadowcasting over a grid whose
// cells carry a continuous obstacle density. What travels through the grid
// (light, fragments) is decided by an Ops value.
package shadowcast

import "blastradius/internal/grid"

// Ops parameterises a cast.
type Ops interface {
	// Calc is the intensity reaching a cell given the starting numerator and
	// the obstacle density accumulated so far along the scan line.
	Calc(numerator, cumulative float64, distance int) float64
	// Check reports whether the beam continues past an obstacle.
	Check(obstacle, lastIntensity float64) bool
	// Update merges an incoming intensity into a cell's current value.
	Update(current, incoming float64) float64
	// Accumulate folds the density of the row just crossed into the running total.
	Accumulate(cumulative, current float64, distance int) float64
}

// Grid is the input of a cast.
type Grid interface {
	InBounds(p grid.Point) bool
	ObstacleDensity(p grid.Point) float64
}

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

type caster struct {
	in        Grid
	out       *Field
	ops       Ops
	origin    grid.Point
	radius    int
	numerator float64
}

// Cast scans all eight octants around origin out to radius rows and returns
// the merged intensities. The origin itself is left untouched.
func Cast(in Grid, origin grid.Point, radius int, numerator float64, ops Ops) *Field {
	out := NewField(origin, radius)
	if radius <= 0 {
		return out
	}
	c := &caster{in: in, out: out, ops: ops, origin: origin, radius: radius, numerator: numerator}
	for _, m := range octants {
		c.castLight(1, 1.0, 0.0, 0, m)
	}
	return out
}

// castLight scans one octant from row outward between the start and end
// slopes. Rows are split into spans of equal obstacle density; each span
// that lets the beam through recurses with its density folded into the
// cumulative total.
//
//	lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func (c *caster) castLight(row int, start, end, cumulative float64, m [4]int) {
	if start < end {
		return
	}
	newStart := 0.0
	lastIntensity := 0.0

	for j := row; j <= c.radius; j++ {
		dy := -j
		startedRow := false
		// A row with no cells in bounds counts as open.
		current := 0.0

		for dx := -j; dx <= 0; dx++ {
			p := grid.Point{
				X: c.origin.X + dx*m[0] + dy*m[1],
				Y: c.origin.Y + dx*m[2] + dy*m[3],
				Z: c.origin.Z,
			}
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope || !c.in.InBounds(p) {
				continue
			}
			if end > lSlope {
				break
			}

			density := c.in.ObstacleDensity(p)
			if !startedRow {
				startedRow = true
				current = density
			}

			lastIntensity = c.ops.Calc(c.numerator, cumulative, j)
			c.out.merge(p, lastIntensity, c.ops)

			if density == current {
				// Still inside the same span.
				newStart = rSlope
				continue
			}

			// Span boundary: recurse past the span that just ended if the
			// beam survives it.
			if c.ops.Check(current, lastIntensity) {
				c.castLight(j+1, start, lSlope, c.ops.Accumulate(cumulative, current, j), m)
				start = lSlope
			} else {
				start = newStart
			}
			if start < end {
				return
			}
			current = density
			newStart = rSlope
		}

		if !c.ops.Check(current, lastIntensity) {
			break
		}
		cumulative = c.ops.Accumulate(cumulative, current, j)
	}
}
