package shape

import (
	"blastradius/internal/grid"

	"github.com/zyedidia/generic/mapset"
)

// lineWalker steps along a repeating copy of one Bresenham segment. When
// the index wraps the origin advances (or retreats) by one whole segment,
// so the walk continues past either end indefinitely.
type lineWalker struct {
	path   []grid.Point
	origin grid.Point
	delta  grid.Point
	index  int
}

func (l *lineWalker) get() grid.Point { return l.origin.Add(l.path[l.index]) }

func (l *lineWalker) next() {
	l.index = (l.index + 1) % len(l.path)
	if l.index == 0 {
		l.origin = l.origin.Add(l.delta)
	}
}

func (l *lineWalker) prev() {
	if l.index == 0 {
		l.origin = l.origin.Sub(l.delta)
	}
	l.index = (l.index + len(l.path) - 1) % len(l.path)
}

func (l *lineWalker) reset(origin grid.Point) {
	l.origin = origin
	l.index = 0
}

// sideOf is the orientation of c relative to the line a→b: 1, -1 or 0.
func sideOf(a, b, c grid.Point) int {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return grid.Sign(cross)
}

// betweenOrOn reports whether c lies in the band bounded by the parallel
// lines (a0, a0+d) and (a1, a1+d).
func betweenOrOn(a0, a1, d, c grid.Point) bool {
	return sideOf(a0, a0.Add(d), c) != 1 && sideOf(a1, a1.Add(d), c) != -1
}

type lineTest func(p, prev grid.Point) bool

// strand adds the cells of one strand parallel to the midline until it
// leaves the band between the source and target perpendiculars or hits
// something.
func strand(l lineWalker, source, delta, perp grid.Point, test lineTest, ts TargetSet) {
	last := source
	for betweenOrOn(grid.Point{}, delta, perp, l.get()) {
		p := source.Add(l.get())
		if !test(p, last) {
			break
		}
		ts.Put(p)
		last = p
		l.next()
	}
}

// Line is a thick line from source toward target, width cells wide. The
// clockwise side gets the extra cell when width is even. Lines are planar;
// the source level is kept.
func (b *Builder) Line(source, target grid.Point, width int, ignoreWalls bool) TargetSet {
	ts := mapset.New[grid.Point]()
	delta := target.Sub(source).XY()
	dist := grid.SquareDist(grid.Point{}, delta)
	if dist == 0 {
		return b.done(KindLine, ts)
	}
	perp := grid.Point{X: -delta.Y, Y: delta.X}

	abs := delta.Abs()
	axis := grid.Point{Y: delta.Y}
	if abs.X > abs.Y {
		axis = grid.Point{X: delta.X}
	}
	unitPerp := grid.Point{X: grid.Sign(-axis.Y), Y: grid.Sign(axis.X)}

	ccwLen := width / 2
	cwLen := width - ccwLen
	if b.Metric == grid.Chebyshev {
		ccwLen = ccwLen * (abs.X + abs.Y) / dist
		cwLen = cwLen * (abs.X + abs.Y) / dist
	}
	side := sideOf(grid.Point{}, axis, delta)

	test := lineTest(b.passable)
	if ignoreWalls {
		test = func(grid.Point, grid.Point) bool { return true }
	}

	path := grid.Line(grid.Point{}, delta)
	path = append([]grid.Point{{}}, path[:len(path)-1]...)
	walker := lineWalker{path: path, delta: delta}

	strand(walker, source, delta, perp, test, ts)

	// forward advances a strand start until it is inside the band; back
	// retreats until it is just inside.
	forward := func(l *lineWalker) {
		for sideOf(grid.Point{}, perp, l.get()) == 1 {
			l.next()
		}
	}
	back := func(l *lineWalker) {
		for sideOf(grid.Point{}, perp, l.get()) != 1 {
			l.prev()
		}
		l.next()
	}
	leg := func(length int, align func(*lineWalker)) {
		var prev grid.Point
		for _, p := range grid.Line(grid.Point{}, unitPerp.Scale(length)) {
			walker.reset(p)
			if align != nil {
				align(&walker)
			}
			if !test(source.Add(p), source.Add(prev)) {
				break
			}
			strand(walker, source, delta, perp, test, ts)
			prev = p
		}
	}

	switch side {
	case 0:
		leg(cwLen, nil)
		leg(-ccwLen, nil)
	case 1:
		leg(-ccwLen, forward)
		leg(cwLen, back)
	default:
		leg(-ccwLen, back)
		leg(cwLen, forward)
	}

	ts.Remove(source)
	return b.done(KindLine, ts)
}
