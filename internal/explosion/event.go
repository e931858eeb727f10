package explosion

import (
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

// Kind selects how an event is handled.
type Kind uint8

const (
	KindRegular Kind = iota
	KindFlashbang
	KindShockwave
	KindResonanceCascade
)

var kindNames = [...]string{"regular", "flashbang", "shockwave", "resonance_cascade"}

func (k Kind) String() string {
	if k.Known() {
		return kindNames[k]
	}
	return "unknown"
}

// Known reports whether k is one of the defined kinds.
func (k Kind) Known() bool { return int(k) < len(kindNames) }

// ShockwaveData shoves everything within Radius away from the epicenter.
type ShockwaveData struct {
	Radius           int
	Force            int
	Stun             int
	DamageMultiplier int
	AffectsPlayer    bool
}

// FlashbangData tunes a flashbang.
type FlashbangData struct {
	// PlayerImmune leaves the player unaffected, e.g. when they threw it
	// wearing ear and eye protection.
	PlayerImmune bool
}

// Event is one queued area effect. Only the payload matching Kind is read.
type Event struct {
	Pos       grid.Point
	Kind      Kind
	Explosion Descriptor
	Shockwave ShockwaveData
	Flashbang FlashbangData
	Source    world.OccupantID
}
