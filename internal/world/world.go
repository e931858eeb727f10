// Package world defines the touch points between the area-effect engine and
// whatever owns the terrain and its occupants.
package world

import "blastradius/internal/grid"

// Terrain answers passability questions and absorbs bash damage.
type Terrain interface {
	InBounds(p grid.Point) bool
	Impassable(p grid.Point) bool
	// PassableOrThinObstacle treats windows, fences and similar cells as
	// open for area shapes.
	PassableOrThinObstacle(p grid.Point) bool
	// ObstacleDensity is how much fragment intensity a cell absorbs.
	// Open cells return 0.
	ObstacleDensity(p grid.Point) float64
	Bash(p grid.Point, force float64, destroyFloor bool)
	ObstructedByVehicleRotation(from, to grid.Point) bool
	// VerticalPassable reports whether nothing solid separates two cells
	// stacked on adjacent levels.
	VerticalPassable(from, to grid.Point) bool
	HasVehicle(p grid.Point) bool
	DamageVehicle(p grid.Point, amount float64)
}

// Occupancy finds creatures by position.
type Occupancy interface {
	OccupantAt(p grid.Point) (Occupant, bool)
}

// Contents mutates the items and fields lying on cells.
type Contents interface {
	Ignite(p grid.Point, intensity int)
	SmashItems(p grid.Point, force float64)
	MoveItems(from, to grid.Point)
	AddField(p grid.Point, f FieldType, intensity int)
	MoveField(from, to grid.Point)
}

// Sight answers line-of-sight queries.
type Sight interface {
	LineOfSight(a, b grid.Point, maxRange int) bool
}

// World is everything the engine reads from and writes into.
type World interface {
	Terrain
	Occupancy
	Contents
	Sight
}

// Anomalies is implemented by worlds that support the stranger outcomes of
// a resonance cascade. Worlds without it simply skip those outcomes.
type Anomalies interface {
	EMP(p grid.Point)
	SetTrap(p grid.Point, trap Trap)
	SpawnAnomaly(p grid.Point)
	Destroy(p grid.Point)
}

// Trap identifies a trap a cascade can leave behind.
type Trap uint8

const (
	TrapPortal Trap = iota
	TrapGoo
)

// FieldType identifies a kind of field effect on a cell.
type FieldType uint8

const (
	FieldFire FieldType = iota
	FieldSmoke
	FieldBlood
	FieldBile
	FieldSlime
	FieldAcid
	FieldNukeGas
)

var fieldNames = [...]string{"fire", "smoke", "blood", "bile", "slime", "acid", "nuke_gas"}

func (f FieldType) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// ParseField maps a name back to a FieldType.
func ParseField(s string) (FieldType, bool) {
	for i, n := range fieldNames {
		if n == s {
			return FieldType(i), true
		}
	}
	return 0, false
}
