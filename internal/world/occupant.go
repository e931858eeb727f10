package world

import "blastradius/internal/grid"

// OccupantID identifies an occupant for damage bookkeeping.
type OccupantID uint64

// DamageMap accumulates damage dealt per occupant during one pass.
type DamageMap map[OccupantID]int

// Merge adds every entry of o into m.
func (m DamageMap) Merge(o DamageMap) {
	for id, d := range o {
		m[id] += d
	}
}

// Total sums all entries.
func (m DamageMap) Total() int {
	n := 0
	for _, d := range m {
		n += d
	}
	return n
}

// Size is an occupant's body size class.
type Size uint8

const (
	SizeTiny Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeHuge
)

// BodyPart names a hit location.
type BodyPart uint8

const (
	Torso BodyPart = iota
	Head
	LegL
	LegR
	ArmL
	ArmR
)

var partNames = [...]string{"torso", "head", "left leg", "right leg", "left arm", "right arm"}

func (b BodyPart) String() string {
	if int(b) < len(partNames) {
		return partNames[b]
	}
	return "body"
}

// Status is a timed condition applied by area effects.
type Status uint8

const (
	StatusStunned Status = iota
	StatusBlind
	StatusDeaf
	StatusTeleglow
)

// Senses describes how an occupant perceives flashes and bangs.
type Senses struct {
	Sees, Hears bool
	// Electronic occupants shrug off flashbangs entirely.
	Electronic bool
}

// Occupant is a creature standing on a cell.
type Occupant interface {
	ID() OccupantID
	Pos() grid.Point
	Name() string
	Humanoid() bool
	Player() bool
	Dead() bool
	Size() Size
	WeightGrams() int
	BodyParts() []BodyPart
	BashArmor(part BodyPart) float64
	Senses() Senses

	// DealDamage applies d to part after armour and returns the damage taken.
	DealDamage(part BodyPart, d DamageInstance) int
	// ApplyDamage removes amount hit points from part without armour.
	ApplyDamage(part BodyPart, amount int)
	// KnockBackTo moves the occupant to p when p can hold it.
	KnockBackTo(p grid.Point)
	// Knockback shoves the occupant away from source by force cells.
	Knockback(source grid.Point, force, stun, damMult int)
	ApplyStatus(s Status, turns int)
}
