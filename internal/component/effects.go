package component

import "blastradius/internal/ecs"

const CEffects ecs.ComponentType = 7

// EffectKind describes what an active effect does.
type EffectKind uint8

const (
	EffectStunned EffectKind = iota
	EffectBlind
	EffectDeaf
	EffectTeleglow
)

var effectNames = [...]string{"stunned", "blind", "deaf", "teleglow"}

func (k EffectKind) String() string {
	if int(k) < len(effectNames) {
		return effectNames[k]
	}
	return "unknown"
}

// ActiveEffect is a timed status applied to an entity.
type ActiveEffect struct {
	Kind           EffectKind
	TurnsRemaining int
}

type Effects struct {
	Active []ActiveEffect
}

func (Effects) Type() ecs.ComponentType { return CEffects }
