package blast

import (
	"math"

	"blastradius/internal/grid"
	"blastradius/internal/world"
)

// Restitution is the share of speed kept after slamming into something.
const Restitution = 0.3

// FlingVelocity is the launch speed, in tenths of a cell, of a body of
// weight grams standing distance cells from an epicenter of peak force.
func FlingVelocity(coefficient, radius, distance, peak float64, weight int) float64 {
	v := 10 * coefficient * (radius - distance) * peak / float64(max(weight, 1))
	return min(max(v, 0), 10*2.0*radius)
}

// fling launches occ away from the epicenter and returns the impact damage
// it took when landing against an obstacle.
func (s *sorted) fling(w world.World, occ world.Occupant, epicenter, at grid.Point, radius, dist, peak float64) int {
	v := FlingVelocity(s.cfg.FlingCoefficient, radius, dist, peak, occ.WeightGrams())
	cells := int(v / 10)
	if cells < 1 {
		return 0
	}

	var angle float64
	if at == epicenter {
		angle = s.rng.Float64() * 2 * math.Pi
	} else {
		dx := float64(at.X-epicenter.X) + s.rng.Float64() - 0.5
		dy := float64(at.Y-epicenter.Y) + s.rng.Float64() - 0.5
		angle = math.Atan2(dy, dx)
	}

	land, impact := fly(w, occ, at, angle, cells)
	if land != at {
		occ.KnockBackTo(land)
	}
	if impact > 0 && !occ.Dead() {
		occ.ApplyDamage(world.Torso, impact)
		return impact
	}
	return 0
}

// fly traces a flight of the given number of cells from start. Each time
// the path is blocked the body rebounds with reduced speed. It returns the
// landing cell and the total speed lost to collisions.
func fly(w world.World, occ world.Occupant, start grid.Point, angle float64, cells int) (grid.Point, int) {
	pos := start
	impact := 0
	for cells > 0 {
		end := grid.Euclidean.RayEnd(angle, cells, pos)
		path := grid.Line(pos, end)
		if len(path) == 0 {
			break
		}
		blocked := false
		for _, step := range path {
			if blocksFlight(w, occ, pos, step) {
				blocked = true
				break
			}
			pos = step
			cells--
			if cells == 0 {
				break
			}
		}
		if !blocked {
			break
		}
		impact += cells
		angle += math.Pi
		cells = int(float64(cells) * Restitution)
	}
	return pos, impact
}

func blocksFlight(w world.World, occ world.Occupant, from, to grid.Point) bool {
	if !w.InBounds(to) || w.Impassable(to) || w.ObstructedByVehicleRotation(from, to) {
		return true
	}
	if other, ok := w.OccupantAt(to); ok && other.ID() != occ.ID() {
		return true
	}
	return false
}
