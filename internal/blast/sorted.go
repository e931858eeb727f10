package blast

import (
	"sort"

	"blastradius/internal/grid"
	"blastradius/internal/world"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

type sorted struct{ base }

func (*sorted) Variant() Variant { return Sorted }

type reach struct {
	p    grid.Point
	dist float64 // z-aware distance
}

// cells lists every in-bounds cell whose z-aware distance truncates to at
// most radius, nearest first. Ties keep enumeration order.
func (s *sorted) cells(w world.World, epicenter grid.Point, radius int) []reach {
	zr := 0
	if s.cfg.ZLevels {
		zr = radius / int(ZLevelDist)
	}
	var out []reach
	for dz := -zr; dz <= zr; dz++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p := epicenter.Add(grid.Point{X: dx, Y: dy, Z: dz})
				if !w.InBounds(p) {
					continue
				}
				flat := s.cfg.Metric.Dist(epicenter.XY(), p.XY())
				d := flat + (ZLevelDist-1)*float64(max(dz, -dz))
				if int(d) <= radius {
					out = append(out, reach{p, d})
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].dist < out[j].dist })
	return out
}

// occluded reports whether the straight line from a to b crosses an
// impassable cell before reaching b, or squeezes past a rotated vehicle.
func occluded(w world.Terrain, a, b grid.Point) bool {
	prev := a
	for _, step := range grid.Line(a, b) {
		if step != b && w.Impassable(step) {
			return true
		}
		if w.ObstructedByVehicleRotation(prev, step) {
			return true
		}
		prev = step
	}
	return false
}

func (s *sorted) Propagate(w world.World, epicenter grid.Point, p Params) world.DamageMap {
	dealt := world.DamageMap{}
	radius := int(p.Radius)
	if s.rejected(epicenter, p, float64(radius)) {
		return dealt
	}
	r := float64(radius)

	damaged := mapset.New[world.OccupantID]()
	flung := mapset.New[world.OccupantID]()
	frame := Frame{Epicenter: epicenter, Radius: p.Radius, Cells: make(map[grid.Point]float64)}
	frontier := -1
	visited := 0

	for _, c := range s.cells(w, epicenter, radius) {
		d := int(c.dist)
		if d > frontier {
			if frontier >= 0 {
				s.emit(frame)
			}
			frontier = d
		}
		if occluded(w, epicenter, c.p) {
			continue
		}
		visited++
		dist := float64(d)
		falloff := Falloff(r, dist)
		if !w.Impassable(c.p) {
			frame.Cells[c.p] = falloff
		}

		w.SmashItems(c.p, p.Force*ItemFalloff(r, dist))

		if occ, ok := w.OccupantAt(c.p); ok && !occ.Dead() {
			id := occ.ID()
			if !damaged.Has(id) {
				damaged.Put(id)
				if n := s.hit(occ, p.Force*SizeFalloff(occ.Size(), r, dist)); n > 0 {
					dealt[id] += n
				}
			}
			if !occ.Dead() && !flung.Has(id) {
				flung.Put(id)
				if n := s.fling(w, occ, epicenter, c.p, r, dist, p.Force); n > 0 {
					dealt[id] += n
				}
			}
		}

		force := p.Force * falloff
		if w.HasVehicle(c.p) {
			// Vehicles are sturdier than their parts suggest: two full hits.
			w.DamageVehicle(c.p, force)
			w.DamageVehicle(c.p, force)
		} else {
			s.erode(w, c.p, force, p.Force)
		}

		if force >= 1 && !w.Impassable(c.p) {
			if p.Fire {
				w.Ignite(c.p, FireIntensity(force))
			}
			w.AddField(c.p, world.FieldSmoke, 1)
		}
	}
	frame.Final = true
	s.emit(frame)

	s.log.Debug("sorted blast",
		zap.Stringer("epicenter", epicenter),
		zap.Float64("force", p.Force),
		zap.Int("radius", radius),
		zap.Int("cells", visited),
		zap.Int("victims", len(dealt)))
	return dealt
}

// erode bashes a cell repeatedly, losing a fixed share of peak force
// between hits, so multi-stage terrain (door, broken door, floor) can fall
// to a single blast.
func (s *sorted) erode(w world.Terrain, p grid.Point, force, peak float64) {
	step := s.cfg.Dissipation * peak
	if step <= 0 {
		if force > 0 {
			w.Bash(p, force, false)
		}
		return
	}
	for strength := force; strength > 0; strength -= step {
		w.Bash(p, strength, false)
	}
}

func (s *sorted) hit(occ world.Occupant, force float64) int {
	if force <= 0 {
		return 0
	}
	if occ.Humanoid() {
		return hitHumanoid(s.rng, occ, force)
	}
	return occ.DealDamage(world.Torso, world.Bash(float64(int(force)), 1))
}
