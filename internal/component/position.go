package component

import (
	"blastradius/internal/ecs"
	"blastradius/internal/grid"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y, Z int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point converts to a grid coordinate.
func (p Position) Point() grid.Point { return grid.Point{X: p.X, Y: p.Y, Z: p.Z} }

// At builds a Position from a grid coordinate.
func At(p grid.Point) Position { return Position{X: p.X, Y: p.Y, Z: p.Z} }
