package system

import (
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
)

// MoveResult describes the outcome of a MoveTo call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall or out-of-bounds
	MoveOccupied                   // another blocking entity stands there
)

// BlockerAt returns the blocking entity standing on p, ignoring self.
func BlockerAt(w *ecs.World, p grid.Point, self ecs.EntityID) ecs.EntityID {
	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == self {
			continue
		}
		if w.Get(other, component.CPosition).(component.Position).Point() == p {
			return other
		}
	}
	return ecs.NilEntity
}

// MoveTo places entity id on p when the tile is walkable and free.
func MoveTo(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, p grid.Point) MoveResult {
	if !w.Has(id, component.CPosition) {
		return MoveBlocked
	}
	if BlockerAt(w, p, id) != ecs.NilEntity {
		return MoveOccupied
	}
	if !gmap.IsWalkable(p) {
		return MoveBlocked
	}
	w.Add(id, component.At(p))
	return MoveOK
}

// KnockbackResult records how far an entity travelled and what stopped it.
type KnockbackResult struct {
	Cells  int
	Impact int
	Killed bool
}

// Knockback shoves id up to force cells directly away from source. Slamming
// into a wall or another body costs damMult HP per cell of travel left and
// an extra turn of stun. A positive stun stuns on top of that.
func Knockback(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, source grid.Point, force, stun, damMult int) KnockbackResult {
	var res KnockbackResult
	posComp := w.Get(id, component.CPosition)
	if posComp == nil || force <= 0 {
		return res
	}
	pos := posComp.(component.Position).Point()
	dir := pos.Sub(source).XY()
	if dir == (grid.Point{}) {
		return res
	}

	stunTurns := stun
	path := grid.Line(pos, pos.Add(dir.Scale(force)))
	for i, next := range path {
		if i >= force {
			break
		}
		if MoveTo(w, gmap, id, next) != MoveOK {
			remaining := force - i
			stunTurns++
			if damMult > 0 {
				r := ApplyDamage(w, id, damMult*remaining)
				res.Impact, res.Killed = r.Damage, r.Killed
			}
			break
		}
		res.Cells++
	}
	if stunTurns > 0 && !res.Killed {
		ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectStunned, TurnsRemaining: stunTurns})
	}
	return res
}
