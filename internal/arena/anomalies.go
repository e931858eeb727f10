package arena

import (
	"blastradius/assets"
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

// empDamage is what a pulse does to electronics and vehicle parts.
const empDamage = 30

// destroyForce breaks any tile in one blow.
const destroyForce = 1e6

func (a *Arena) EMP(p grid.Point) {
	if o, ok := a.OccupantAt(p); ok && o.Senses().Electronic {
		o.ApplyDamage(world.Torso, empDamage)
	}
	a.DamageVehicle(p, empDamage)
}

func (a *Arena) SetTrap(p grid.Point, trap world.Trap) {
	if a.Map.IsWalkable(p) {
		a.Traps[p] = trap
	}
}

// SpawnAnomaly drops an anomaly on p when it is free.
func (a *Arena) SpawnAnomaly(p grid.Point) {
	def, _ := assets.Creature("anomaly")
	if _, err := a.Spawn(def, p); err == nil {
		a.Say("Something steps out of thin air.")
	}
}

// Destroy reduces whatever stands on p to its final broken form.
func (a *Arena) Destroy(p grid.Point) {
	if !a.Map.InBounds(p) {
		return
	}
	for a.Map.Bash(p, destroyForce, false) {
	}
	a.Map.SmashItems(p, destroyForce)
	a.Map.DamageVehicle(p, destroyForce)
}
