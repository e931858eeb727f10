package shape

import (
	"blastradius/internal/grid"

	"github.com/zyedidia/generic/mapset"
)

// coneStep is the angular spacing of cone rays in degrees.
const coneStep = 0.5

// Cone fans rays widthDeg wide around the source→target direction out to
// rng+1 cells. Each ray stops at the first blocked cell. The source is
// never part of the cone.
func (b *Builder) Cone(source, target grid.Point, widthDeg float64, rng int, ignoreWalls bool) TargetSet {
	ts := mapset.New[grid.Point]()
	if source == target {
		return b.done(KindCone, ts)
	}
	initial := grid.Angle(source, target)
	half := widthDeg / 2

	ends := mapset.New[grid.Point]()
	for i := 0; float64(i)*coneStep <= widthDeg; i++ {
		a := initial + grid.Radians(float64(i)*coneStep-half)
		ends.Put(b.Metric.RayEnd(a, rng+1, source))
	}

	ends.Each(func(end grid.Point) {
		last := source
		for _, p := range grid.Line(source, end) {
			if !ignoreWalls && !b.passable(p, last) {
				break
			}
			ts.Put(p)
			last = p
		}
	})
	ts.Remove(source)
	return b.done(KindCone, ts)
}
