package gamemap

import (
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

// Rect is an axis-aligned rectangle on one level, inclusive on both ends.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// GameMap holds the tiles of a stack of levels. Level z lives at Levels[z].
type GameMap struct {
	Width, Height int
	Levels        [][][]Tile
}

// New creates a GameMap of depth levels filled with walls.
func New(width, height, depth int) *GameMap {
	if depth < 1 {
		depth = 1
	}
	levels := make([][][]Tile, depth)
	for z := range levels {
		levels[z] = make([][]Tile, height)
		for y := range levels[z] {
			levels[z][y] = make([]Tile, width)
			for x := range levels[z][y] {
				levels[z][y][x] = MakeWall()
			}
		}
	}
	return &GameMap{Width: width, Height: height, Levels: levels}
}

// Depth is the number of levels.
func (m *GameMap) Depth() int { return len(m.Levels) }

// InBounds reports whether p is within the map boundaries.
func (m *GameMap) InBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height && p.Z >= 0 && p.Z < len(m.Levels)
}

// At returns a pointer to the tile at p. Panics if out of bounds.
func (m *GameMap) At(p grid.Point) *Tile {
	return &m.Levels[p.Z][p.Y][p.X]
}

// Set replaces the tile at p, keeping what lies on it.
func (m *GameMap) Set(p grid.Point, t Tile) {
	old := m.At(p)
	t.Items, t.Fields, t.Vehicle = old.Items, old.Fields, old.Vehicle
	t.Explored = old.Explored
	*old = t
}

// Fill sets every tile of r on level z.
func (m *GameMap) Fill(r Rect, z int, t Tile) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if p := (grid.Point{X: x, Y: y, Z: z}); m.InBounds(p) {
				m.Set(p, t)
			}
		}
	}
}

// IsWalkable returns true when p is in bounds and walkable.
func (m *GameMap) IsWalkable(p grid.Point) bool {
	return m.InBounds(p) && m.At(p).Walkable
}

// IsTransparent returns true when p is in bounds and transparent.
func (m *GameMap) IsTransparent(p grid.Point) bool {
	return m.InBounds(p) && m.At(p).Transparent
}

// Bash hits the tile at p with force. Tiles whose strength is reached give
// way to their broken form; a strong enough blow with destroyFloor also
// removes the floor. Reports whether anything changed.
func (m *GameMap) Bash(p grid.Point, force float64, destroyFloor bool) bool {
	if !m.InBounds(p) {
		return false
	}
	t := m.At(p)
	changed := false
	if destroyFloor && t.Floor && force >= FloorStrength {
		t.Floor = false
		if t.Walkable && t.Kind != TileStairsUp {
			m.Set(p, MakeOpenAir())
		}
		changed = true
	}
	if t.Strength > 0 && force >= t.Strength {
		if next, ok := Broken(t.Kind); ok {
			next.Floor = next.Floor && t.Floor
			m.Set(p, next)
			changed = true
		}
	}
	return changed
}

// Connected reports whether nothing solid lies between two vertically
// adjacent cells: the upper cell has no floor.
func (m *GameMap) Connected(a, b grid.Point) bool {
	if a.X != b.X || a.Y != b.Y || !m.InBounds(a) || !m.InBounds(b) {
		return false
	}
	switch b.Z - a.Z {
	case 1:
		return !m.At(b).Floor
	case -1:
		return !m.At(a).Floor
	}
	return false
}

// AddField raises the intensity of field f at p, keeping the stronger value.
func (m *GameMap) AddField(p grid.Point, f world.FieldType, intensity int) {
	if !m.InBounds(p) || intensity <= 0 {
		return
	}
	t := m.At(p)
	if t.Fields == nil {
		t.Fields = make(map[world.FieldType]int)
	}
	if intensity > t.Fields[f] {
		t.Fields[f] = intensity
	}
}

// MoveFields relocates every field at from onto to.
func (m *GameMap) MoveFields(from, to grid.Point) {
	if !m.InBounds(from) || !m.InBounds(to) || from == to {
		return
	}
	src := m.At(from)
	for f, n := range src.Fields {
		m.AddField(to, f, n)
	}
	src.Fields = nil
}

// MoveItems transfers the whole item stack at from onto to.
func (m *GameMap) MoveItems(from, to grid.Point) {
	if !m.InBounds(from) || !m.InBounds(to) || from == to {
		return
	}
	src, dst := m.At(from), m.At(to)
	dst.Items = append(dst.Items, src.Items...)
	src.Items = nil
}

// SmashItems damages every item at p by force; broken items are removed.
// Returns how many items were destroyed.
func (m *GameMap) SmashItems(p grid.Point, force float64) int {
	if !m.InBounds(p) || force <= 0 {
		return 0
	}
	t := m.At(p)
	kept := t.Items[:0]
	lost := 0
	for _, it := range t.Items {
		it.HP -= int(force)
		if it.HP > 0 {
			kept = append(kept, it)
		} else {
			lost++
		}
	}
	t.Items = kept
	return lost
}

// DamageVehicle wears down the vehicle part at p, removing it at zero HP.
func (m *GameMap) DamageVehicle(p grid.Point, amount float64) {
	if !m.InBounds(p) {
		return
	}
	t := m.At(p)
	if t.Vehicle == nil {
		return
	}
	t.Vehicle.HP -= int(amount)
	if t.Vehicle.HP <= 0 {
		t.Vehicle = nil
	}
}

// SkewedGap reports whether a diagonal step from a to b slips between two
// parts of a vehicle parked at an angle.
func (m *GameMap) SkewedGap(a, b grid.Point) bool {
	if a.X == b.X || a.Y == b.Y || a.Z != b.Z {
		return false
	}
	c1 := grid.Point{X: a.X, Y: b.Y, Z: a.Z}
	c2 := grid.Point{X: b.X, Y: a.Y, Z: a.Z}
	if !m.InBounds(c1) || !m.InBounds(c2) {
		return false
	}
	v1, v2 := m.At(c1).Vehicle, m.At(c2).Vehicle
	return v1 != nil && v2 != nil && v1.Skewed && v2.Skewed
}
