package gamemap

import "blastradius/internal/world"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileBrokenDoor
	TileWindow
	TileBrokenWindow
	TileRubble
	TileOpenAir
	TileStairsUp
	TileStairsDown
)

// FloorStrength is the bash force needed to punch through a solid floor.
const FloorStrength = 50

// Item is one object lying on a tile.
type Item struct {
	Name  string
	Glyph string
	HP    int
}

// VehiclePart is a piece of vehicle occupying a tile. Skewed parts belong
// to a vehicle parked at an angle, which leaves diagonal gaps that cannot
// be squeezed through.
type VehiclePart struct {
	Name   string
	HP     int
	Skewed bool
}

// Tile holds terrain, contents and visibility state for one map cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	// Thin obstacles (windows) stop bodies but not area effects.
	Thin bool
	// Floor is a solid floor under the tile; without one, things can fall
	// or blast through to the level below.
	Floor bool
	// Strength is the bash force that breaks the tile; 0 means unbreakable.
	Strength float64
	// Density is how much fragment intensity the tile absorbs.
	Density float64

	Items   []Item
	Fields  map[world.FieldType]int
	Vehicle *VehiclePart

	Explored bool
	Visible  bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Floor: true, Strength: 60, Density: 100}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true, Floor: true}
}

// MakeDoor returns a closed wooden door.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Floor: true, Strength: 20, Density: 15}
}

// MakeBrokenDoor returns the splintered frame left after a door gives way.
func MakeBrokenDoor() Tile {
	return Tile{Kind: TileBrokenDoor, Walkable: true, Transparent: true, Floor: true, Strength: 10, Density: 2}
}

// MakeWindow returns an intact window.
func MakeWindow() Tile {
	return Tile{Kind: TileWindow, Transparent: true, Thin: true, Floor: true, Strength: 5, Density: 3}
}

// MakeBrokenWindow returns an empty window frame.
func MakeBrokenWindow() Tile {
	return Tile{Kind: TileBrokenWindow, Thin: true, Transparent: true, Floor: true, Strength: 3, Density: 1}
}

// MakeRubble returns the debris left by a destroyed wall.
func MakeRubble() Tile {
	return Tile{Kind: TileRubble, Walkable: true, Transparent: true, Floor: true}
}

// MakeOpenAir returns a tile with nothing to stand on.
func MakeOpenAir() Tile {
	return Tile{Kind: TileOpenAir, Walkable: true, Transparent: true}
}

// MakeStairsDown returns a downward staircase tile.
func MakeStairsDown() Tile {
	return Tile{Kind: TileStairsDown, Walkable: true, Transparent: true}
}

// MakeStairsUp returns an upward staircase tile.
func MakeStairsUp() Tile {
	return Tile{Kind: TileStairsUp, Walkable: true, Transparent: true, Floor: true}
}

// Broken returns what a tile of kind k turns into when bashed through.
func Broken(k TileKind) (Tile, bool) {
	switch k {
	case TileWall:
		return MakeRubble(), true
	case TileDoor:
		return MakeBrokenDoor(), true
	case TileBrokenDoor, TileBrokenWindow:
		return MakeFloor(), true
	case TileWindow:
		return MakeBrokenWindow(), true
	}
	return Tile{}, false
}
