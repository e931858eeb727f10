package shadowcast

import (
	"testing"

	"blastradius/internal/grid"
)

// testGrid is an open rectangle with optional obstacles.
type testGrid struct {
	width, height int
	density       map[grid.Point]float64
}

func openGrid(width, height int) *testGrid {
	return &testGrid{width: width, height: height, density: make(map[grid.Point]float64)}
}

func (g *testGrid) InBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height && p.Z == 0
}

func (g *testGrid) ObstacleDensity(p grid.Point) float64 { return g.density[p] }

// decay is a minimal fragment-style ops used to exercise the scan.
type decay struct{}

func (decay) Calc(n, cum float64, _ int) float64 { return n - cum }

func (decay) Check(obstacle, last float64) bool { return last-obstacle > 0 }

func (decay) Update(cur, in float64) float64 { return max(cur, in) }

func (decay) Accumulate(cum, cur float64, _ int) float64 { return max(cum, cur) + 1 }

func visibleSet(g Grid, origin grid.Point, radius int) map[grid.Point]bool {
	seen := make(map[grid.Point]bool)
	Visible(g, origin, radius, func(p grid.Point) { seen[p] = true })
	return seen
}

func TestVisibleOriginAlwaysLit(t *testing.T) {
	g := openGrid(20, 20)
	seen := visibleSet(g, grid.P(5, 5), 5)
	if !seen[grid.P(5, 5)] {
		t.Error("the origin must always be visible")
	}
}

func TestVisibleNearbyCells(t *testing.T) {
	// dx²+dy² < radius² → 9 < 25.
	g := openGrid(20, 20)
	seen := visibleSet(g, grid.P(10, 10), 5)
	for _, p := range []grid.Point{grid.P(10, 7), grid.P(10, 13), grid.P(7, 10), grid.P(13, 10)} {
		if !seen[p] {
			t.Errorf("cell %v at distance 3 should be visible (radius=5)", p)
		}
	}
}

func TestVisibleRadiusLimits(t *testing.T) {
	g := openGrid(20, 20)
	seen := visibleSet(g, grid.P(10, 10), 4)
	for _, p := range []grid.Point{grid.P(10, 15), grid.P(10, 5), grid.P(15, 10), grid.P(5, 10)} {
		if seen[p] {
			t.Errorf("cell %v at distance 5 should not be visible with radius=4", p)
		}
	}
}

func TestVisibleWallBlocksLight(t *testing.T) {
	g := openGrid(20, 20)
	g.density[grid.P(10, 8)] = 1
	seen := visibleSet(g, grid.P(10, 10), 8)
	if !seen[grid.P(10, 8)] {
		t.Error("the wall cell at (10,8) should be visible")
	}
	if seen[grid.P(10, 7)] {
		t.Error("cell (10,7) behind the wall should not be visible")
	}
}

func TestCastLeavesOriginUnset(t *testing.T) {
	g := openGrid(10, 10)
	f := Cast(g, grid.P(5, 5), 3, 4, decay{})
	if v := f.At(grid.P(5, 5)); v != 0 {
		t.Errorf("origin intensity = %v, want 0", v)
	}
	if v := f.At(grid.P(6, 5)); v != 4 {
		t.Errorf("first ring intensity = %v, want the numerator 4", v)
	}
}

func TestCastDecaysWithDistance(t *testing.T) {
	g := openGrid(30, 30)
	f := Cast(g, grid.P(15, 15), 6, 7, decay{})
	prev := f.At(grid.P(16, 15))
	for x := 17; x <= 21; x++ {
		v := f.At(grid.P(x, 15))
		if v >= prev {
			t.Errorf("intensity at x=%d is %v, expected less than %v", x, v, prev)
		}
		prev = v
	}
}

// gappedGrid drops one whole row from the map; the scan must carry on past it.
type gappedGrid struct {
	*testGrid
	gapY int
}

func (g gappedGrid) InBounds(p grid.Point) bool {
	return p.Y != g.gapY && g.testGrid.InBounds(p)
}

func TestCastContinuesPastEmptyRow(t *testing.T) {
	g := gappedGrid{testGrid: openGrid(11, 11), gapY: 7}
	f := Cast(g, grid.P(5, 10), 5, 10, decay{})
	if v := f.At(grid.P(5, 7)); v != 0 {
		t.Errorf("out-of-bounds row lit with %v", v)
	}
	for _, p := range []grid.Point{grid.P(5, 6), grid.P(5, 5), grid.P(4, 6)} {
		if v := f.At(p); v <= 0 {
			t.Errorf("%v beyond the gap got %v; want it lit", p, v)
		}
	}
}

func TestCastZeroRadius(t *testing.T) {
	g := openGrid(5, 5)
	f := Cast(g, grid.P(2, 2), 0, 1, decay{})
	count := 0
	f.Each(func(grid.Point, float64) { count++ })
	if count != 0 {
		t.Errorf("expected no lit cells for radius 0, got %d", count)
	}
}

func TestDenserObstacleCastsDeeperShadow(t *testing.T) {
	behind := func(d float64) float64 {
		g := openGrid(30, 30)
		g.density[grid.P(12, 10)] = d
		f := Cast(g, grid.P(10, 10), 11, 11, decay{})
		return f.At(grid.P(14, 10))
	}
	for _, pair := range [][2]float64{{0.5, 1}, {1, 2}, {2, 5}, {5, 9}, {9, 20}} {
		d1, d2 := pair[0], pair[1]
		if behind(d2) > behind(d1) {
			t.Errorf("density %v leaves %v behind it, more than density %v leaves (%v)",
				d2, behind(d2), d1, behind(d1))
		}
	}
}

func TestFieldIgnoresOutsidePoints(t *testing.T) {
	f := NewField(grid.P(0, 0), 2)
	f.Set(grid.P(5, 5), 3)
	f.Set(grid.Point{X: 0, Y: 0, Z: 1}, 3)
	if f.At(grid.P(5, 5)) != 0 || f.At(grid.Point{Z: 1}) != 0 {
		t.Error("points outside the field must read as zero")
	}
	f.Set(grid.P(-2, 2), 1.5)
	if f.At(grid.P(-2, 2)) != 1.5 {
		t.Error("corner cell should be stored")
	}
}
