package blast

import (
	"blastradius/internal/grid"
	"blastradius/internal/world"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

type legacy struct{ base }

func (*legacy) Variant() Variant { return Legacy }

// wave is an open-set entry. Duplicates for the same cell are allowed;
// the cheapest is popped first and the rest are dropped as closed.
type wave struct {
	dist float64
	p    grid.Point
}

var (
	planar   = grid.Neighbors8[:]
	vertical = []grid.Point{{Z: 1}, {Z: -1}}
)

func (l *legacy) neighbours() []grid.Point {
	if !l.cfg.ZLevels {
		return planar
	}
	return append(append([]grid.Point{}, planar...), vertical...)
}

func (l *legacy) Propagate(w world.World, epicenter grid.Point, p Params) world.DamageMap {
	dealt := world.DamageMap{}
	if l.rejected(epicenter, p, p.Radius) {
		return dealt
	}

	epicenterForce := 2 * p.Force
	if p.Fire {
		epicenterForce = p.Force
	}
	w.Bash(epicenter, epicenterForce, false)

	open := heap.New(func(a, b wave) bool { return a.dist < b.dist })
	open.Push(wave{0, epicenter})
	closed := mapset.New[grid.Point]()
	dist := map[grid.Point]float64{epicenter: 0}
	var order []grid.Point
	offsets := l.neighbours()

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.p) {
			continue
		}
		closed.Put(cur.p)
		order = append(order, cur.p)

		force := p.Force * Falloff(p.Radius, cur.dist)
		if force <= 1 {
			continue
		}
		if cur.p != epicenter && w.Impassable(cur.p) {
			continue
		}

		for _, off := range offsets {
			dest := cur.p.Add(off)
			if closed.Has(dest) || !w.InBounds(dest) || w.ObstructedByVehicleRotation(cur.p, dest) {
				continue
			}

			switch {
			case off.Z == 0:
				w.Bash(dest, force, false)
			case off.Z > 0:
				w.Bash(dest, force, true)
			case !w.VerticalPassable(cur.p, dest):
				// Only break the floor when there is no other way down.
				w.Bash(cur.p, force, true)
			}

			next := cur.dist + l.cfg.Metric.StepCost(off)
			if off.Z != 0 {
				if !w.VerticalPassable(cur.p, dest) {
					continue
				}
				next += ZLevelDist
			}
			if d, seen := dist[dest]; !seen || next < d {
				dist[dest] = next
				open.Push(wave{next, dest})
			}
		}
	}

	frame := Frame{Epicenter: epicenter, Radius: p.Radius, Cells: make(map[grid.Point]float64), Final: true}
	for _, pt := range order {
		falloff := Falloff(p.Radius, dist[pt])
		force := p.Force * falloff
		if force < 1 {
			continue
		}
		if !w.Impassable(pt) {
			frame.Cells[pt] = falloff
		}

		w.SmashItems(pt, force)
		if p.Fire {
			w.Ignite(pt, FireIntensity(force))
		}
		if w.HasVehicle(pt) {
			w.DamageVehicle(pt, force)
		}

		occ, ok := w.OccupantAt(pt)
		if !ok || occ.Dead() {
			continue
		}
		var n int
		if occ.Humanoid() {
			n = hitHumanoid(l.rng, occ, force)
		} else {
			n = l.hitBeast(occ, force)
		}
		if n > 0 {
			dealt[occ.ID()] += n
		}
	}
	l.emit(frame)

	l.log.Debug("legacy blast",
		zap.Stringer("epicenter", epicenter),
		zap.Float64("force", p.Force),
		zap.Float64("radius", p.Radius),
		zap.Int("cells", len(order)),
		zap.Int("victims", len(dealt)))
	return dealt
}

// hitBeast applies one torso hit softened by a third of the torso armour.
func (l *legacy) hitBeast(occ world.Occupant, force float64) int {
	dmg := max(force-occ.BashArmor(world.Torso)/3, 0)
	actual := int(dmg + l.rng.Float64()*dmg)
	if actual <= 0 {
		return 0
	}
	occ.ApplyDamage(world.Torso, actual)
	return actual
}
