package world

// DamageType is the physical character of a damage unit.
type DamageType uint8

const (
	DamageBash DamageType = iota
	DamageCut
	DamageStab
	DamageHeat
)

// DamageUnit is one typed portion of a hit.
type DamageUnit struct {
	Type      DamageType
	Amount    float64
	ArmorPen  float64 // flat armour ignored
	ArmorMult float64 // multiplier on the armour that remains
}

// DamageInstance is a bundle of damage units delivered together.
type DamageInstance struct {
	Units []DamageUnit
}

// Bash builds a single-unit bash instance.
func Bash(amount, armorMult float64) DamageInstance {
	return DamageInstance{Units: []DamageUnit{{Type: DamageBash, Amount: amount, ArmorMult: armorMult}}}
}

// Cut builds a single-unit cutting instance.
func Cut(amount, armorMult float64) DamageInstance {
	return DamageInstance{Units: []DamageUnit{{Type: DamageCut, Amount: amount, ArmorMult: armorMult}}}
}

// Total sums the raw amounts.
func (d DamageInstance) Total() float64 {
	var t float64
	for _, u := range d.Units {
		t += u.Amount
	}
	return t
}

// Scaled returns a copy with every amount multiplied by k.
func (d DamageInstance) Scaled(k float64) DamageInstance {
	out := DamageInstance{Units: make([]DamageUnit, len(d.Units))}
	for i, u := range d.Units {
		u.Amount *= k
		out.Units[i] = u
	}
	return out
}

// Projectile is a fragment payload: how far it flies and what it does on impact.
type Projectile struct {
	Range  int
	Impact DamageInstance
}
