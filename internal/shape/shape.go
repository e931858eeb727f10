// Package shape computes the cells covered by directional area effects:
// discs around a point, cones and thick lines cast from a source.
package shape

import (
	"slices"

	"blastradius/internal/grid"
	"blastradius/internal/world"

	"github.com/zyedidia/generic/mapset"
)

// TargetSet is an unordered set of affected cells.
type TargetSet = mapset.Set[grid.Point]

// DrawHook receives every finished shape, e.g. to highlight it on screen.
type DrawHook func(kind Kind, ts TargetSet)

// Kind selects a shape.
type Kind uint8

const (
	KindBlast Kind = iota
	KindCone
	KindLine
)

var kindNames = [...]string{"blast", "cone", "line"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Builder computes shapes against a terrain.
type Builder struct {
	Terrain world.Terrain
	Metric  grid.Metric
	Draw    DrawHook
}

// New returns a Builder measuring with metric.
func New(t world.Terrain, metric grid.Metric) *Builder {
	return &Builder{Terrain: t, Metric: metric}
}

// passable is the wall test shared by every shape: thin obstacles let area
// effects through, the diagonal gap of a skewed vehicle does not.
func (b *Builder) passable(p, prev grid.Point) bool {
	return !b.Terrain.ObstructedByVehicleRotation(prev, p) && b.Terrain.PassableOrThinObstacle(p)
}

func (b *Builder) done(kind Kind, ts TargetSet) TargetSet {
	if b.Draw != nil {
		b.Draw(kind, ts)
	}
	return ts
}

// Blast covers every cell whose rounded-down distance from target is at most
// radius and that a straight line from target can reach.
func (b *Builder) Blast(target grid.Point, radius int, ignoreWalls bool) TargetSet {
	ts := mapset.New[grid.Point]()
	for y := target.Y - radius; y <= target.Y+radius; y++ {
		for x := target.X - radius; x <= target.X+radius; x++ {
			p := grid.Point{X: x, Y: y, Z: target.Z}
			if b.Metric.RLDist(target, p) > radius {
				continue
			}
			if !ignoreWalls && !b.clearPath(target, p) {
				continue
			}
			ts.Put(p)
		}
	}
	return b.done(KindBlast, ts)
}

func (b *Builder) clearPath(from, to grid.Point) bool {
	last := from
	for _, p := range grid.Line(from, to) {
		if !b.Terrain.PassableOrThinObstacle(p) || b.Terrain.ObstructedByVehicleRotation(p, last) {
			return false
		}
		last = p
	}
	return true
}

// Filter keeps the cells valid accepts. A nil predicate keeps everything.
func Filter(ts TargetSet, valid func(grid.Point) bool) TargetSet {
	out := mapset.New[grid.Point]()
	ts.Each(func(p grid.Point) {
		if valid == nil || valid(p) {
			out.Put(p)
		}
	})
	return out
}

// Area is the footprint of an area spell: a tiny area of effect collapses
// to the target itself, except for lines which always extend.
func (b *Builder) Area(kind Kind, source, target grid.Point, aoe, rng int, ignoreWalls bool, valid func(grid.Point) bool) TargetSet {
	var ts TargetSet
	switch {
	case aoe <= 1 && kind != KindLine:
		ts = mapset.New[grid.Point]()
		ts.Put(target)
	case kind == KindBlast:
		ts = b.Blast(target, aoe, ignoreWalls)
	case kind == KindCone:
		ts = b.Cone(source, target, float64(aoe), rng, ignoreWalls)
	default:
		ts = b.Line(source, target, aoe, ignoreWalls)
	}
	return Filter(ts, valid)
}

// Sorted lists the cells of ts in row-major order, for stable output.
func Sorted(ts TargetSet) []grid.Point {
	out := make([]grid.Point, 0, ts.Size())
	ts.Each(func(p grid.Point) { out = append(out, p) })
	slices.SortFunc(out, func(a, b grid.Point) int {
		if a.Z != b.Z {
			return a.Z - b.Z
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
