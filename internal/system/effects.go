package system

import (
	"blastradius/internal/component"
	"blastradius/internal/ecs"
)

// TickEffects decrements all active effects by one turn and removes expired ones.
func TickEffects(w *ecs.World) {
	for _, id := range w.Query(component.CEffects) {
		eff := w.Get(id, component.CEffects).(component.Effects)
		active := eff.Active[:0]
		for _, e := range eff.Active {
			e.TurnsRemaining--
			if e.TurnsRemaining > 0 {
				active = append(active, e)
			}
		}
		eff.Active = active
		w.Add(id, eff)
	}
}

// ApplyEffect adds an effect to an entity. An effect of the same kind is
// only replaced when the new one lasts longer.
func ApplyEffect(w *ecs.World, id ecs.EntityID, eff component.ActiveEffect) {
	if eff.TurnsRemaining <= 0 {
		return
	}
	effs := component.Effects{}
	if c := w.Get(id, component.CEffects); c != nil {
		effs = c.(component.Effects)
	}
	for i, e := range effs.Active {
		if e.Kind == eff.Kind {
			if eff.TurnsRemaining > e.TurnsRemaining {
				effs.Active[i] = eff
			}
			w.Add(id, effs)
			return
		}
	}
	effs.Active = append(effs.Active, eff)
	w.Add(id, effs)
}

// EffectTurns returns how many turns of kind remain on an entity, 0 if none.
func EffectTurns(w *ecs.World, id ecs.EntityID, kind component.EffectKind) int {
	c := w.Get(id, component.CEffects)
	if c == nil {
		return 0
	}
	for _, e := range c.(component.Effects).Active {
		if e.Kind == kind {
			return e.TurnsRemaining
		}
	}
	return 0
}

// HasEffect reports whether an entity currently has an effect of the given kind.
func HasEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) bool {
	return EffectTurns(w, id, kind) > 0
}
