package component

import (
	"blastradius/internal/ecs"
	"blastradius/internal/world"
)

const (
	CBody   ecs.ComponentType = 4
	CArmor  ecs.ComponentType = 5
	CSenses ecs.ComponentType = 6
)

// Body is the physical build of an occupant.
type Body struct {
	Size        world.Size
	WeightGrams int
	Humanoid    bool
}

func (Body) Type() ecs.ComponentType { return CBody }

// Armor is flat protection applied to every body part.
type Armor struct {
	Bash float64
	Cut  float64
}

func (Armor) Type() ecs.ComponentType { return CArmor }

// Senses records how an occupant perceives flashes and bangs.
type Senses struct {
	Sees, Hears, Electronic bool
}

func (Senses) Type() ecs.ComponentType { return CSenses }
