package arena

import (
	"blastradius/internal/grid"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

func (a *Arena) InBounds(p grid.Point) bool { return a.Map.InBounds(p) }

// Impassable reports cells a body cannot enter. Out of bounds counts.
func (a *Arena) Impassable(p grid.Point) bool { return !a.Map.IsWalkable(p) }

func (a *Arena) PassableOrThinObstacle(p grid.Point) bool {
	if !a.Map.InBounds(p) {
		return false
	}
	t := a.Map.At(p)
	return t.Walkable || t.Thin
}

func (a *Arena) ObstacleDensity(p grid.Point) float64 {
	if !a.Map.InBounds(p) {
		return 0
	}
	return a.Map.At(p).Density
}

func (a *Arena) Bash(p grid.Point, force float64, destroyFloor bool) {
	if !a.Map.InBounds(p) {
		return
	}
	before := a.Map.At(p).Kind
	if a.Map.Bash(p, force, destroyFloor) {
		a.log.Debug("terrain gave way",
			zap.Stringer("pos", p),
			zap.Uint8("from", uint8(before)),
			zap.Uint8("to", uint8(a.Map.At(p).Kind)),
			zap.Float64("force", force))
	}
}

func (a *Arena) ObstructedByVehicleRotation(from, to grid.Point) bool {
	return a.Map.SkewedGap(from, to)
}

func (a *Arena) VerticalPassable(from, to grid.Point) bool {
	return a.Map.Connected(from, to)
}

func (a *Arena) HasVehicle(p grid.Point) bool {
	return a.Map.InBounds(p) && a.Map.At(p).Vehicle != nil
}

func (a *Arena) DamageVehicle(p grid.Point, amount float64) {
	if !a.HasVehicle(p) {
		return
	}
	name := a.Map.At(p).Vehicle.Name
	a.Map.DamageVehicle(p, amount)
	if a.Map.At(p).Vehicle == nil {
		a.Say("The %s is destroyed.", name)
	}
}

// Ignite sets fire to a cell that can hold it.
func (a *Arena) Ignite(p grid.Point, intensity int) {
	if a.PassableOrThinObstacle(p) {
		a.Map.AddField(p, world.FieldFire, intensity)
	}
}

func (a *Arena) SmashItems(p grid.Point, force float64) {
	if n := a.Map.SmashItems(p, force); n > 0 {
		a.log.Debug("items smashed", zap.Stringer("pos", p), zap.Int("count", n))
	}
}

func (a *Arena) MoveItems(from, to grid.Point) { a.Map.MoveItems(from, to) }

func (a *Arena) AddField(p grid.Point, f world.FieldType, intensity int) {
	a.Map.AddField(p, f, intensity)
}

func (a *Arena) MoveField(from, to grid.Point) { a.Map.MoveFields(from, to) }

// LineOfSight walks a straight line from a to b through transparent cells.
// Both ends must share a level; maxRange <= 0 means unlimited.
func (a *Arena) LineOfSight(from, to grid.Point, maxRange int) bool {
	if from.Z != to.Z || !a.Map.InBounds(from) || !a.Map.InBounds(to) {
		return false
	}
	if maxRange > 0 && grid.Chebyshev.RLDist(from, to) > maxRange {
		return false
	}
	path := grid.Line(from, to)
	for i, p := range path {
		if i == len(path)-1 {
			break
		}
		if !a.Map.IsTransparent(p) {
			return false
		}
	}
	return true
}

func (a *Arena) OccupantAt(p grid.Point) (world.Occupant, bool) {
	id, ok := a.entityAt(p)
	if !ok {
		return nil, false
	}
	return &creature{a: a, id: id}, true
}
