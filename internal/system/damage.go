package system

import (
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/world"
)

// DamageResult holds the outcome of one hit.
type DamageResult struct {
	Damage int
	Killed bool
}

// absorbed is the armour left against one damage unit after penetration.
func absorbed(a component.Armor, u world.DamageUnit) float64 {
	var armor float64
	switch u.Type {
	case world.DamageBash:
		armor = a.Bash
	case world.DamageCut:
		armor = a.Cut
	case world.DamageStab:
		armor = 0.8 * a.Cut
	}
	mult := u.ArmorMult
	if mult == 0 {
		mult = 1
	}
	return max(armor-u.ArmorPen, 0) * mult
}

// DealDamage resolves a damage instance against an entity's armour.
// Damage per unit: max(0, amount - max(0, armor-pen)*mult).
func DealDamage(w *ecs.World, id ecs.EntityID, d world.DamageInstance) DamageResult {
	armor := component.Armor{}
	if c := w.Get(id, component.CArmor); c != nil {
		armor = c.(component.Armor)
	}
	var total float64
	for _, u := range d.Units {
		total += max(u.Amount-absorbed(armor, u), 0)
	}
	return ApplyDamage(w, id, int(total))
}

// ApplyDamage removes hit points without consulting armour. Entities other
// than the player are destroyed when their HP runs out.
func ApplyDamage(w *ecs.World, id ecs.EntityID, amount int) DamageResult {
	hpComp := w.Get(id, component.CHealth)
	if hpComp == nil || amount <= 0 {
		return DamageResult{}
	}
	hp := hpComp.(component.Health)
	if hp.Current <= 0 {
		return DamageResult{}
	}
	hp.Current -= amount
	w.Add(id, hp)

	result := DamageResult{Damage: amount}
	if hp.Current <= 0 {
		result.Killed = true
		if !w.Has(id, component.CTagPlayer) {
			w.DestroyEntity(id)
		}
	}
	return result
}

// Dead reports whether an entity is gone or has no hit points left.
func Dead(w *ecs.World, id ecs.EntityID) bool {
	if !w.Alive(id) {
		return true
	}
	if c := w.Get(id, component.CHealth); c != nil {
		return c.(component.Health).Current <= 0
	}
	return false
}
