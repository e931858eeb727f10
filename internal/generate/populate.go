package generate

import (
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
)

// Spawn names an asset to place at a cell.
type Spawn struct {
	ID  string
	Pos grid.Point
}

// Population is what Populate decided to put into a layout.
type Population struct {
	Creatures []Spawn
	Items     []Spawn
}

// Populate scatters creatures over every room but the first, where the
// player starts, and items over all rooms. No two creatures share a cell.
func Populate(l Layout, cfg Config) Population {
	var pop Population
	if len(l.Rooms) == 0 {
		return pop
	}
	taken := map[grid.Point]bool{l.Start: true}
	placeable := l.Rooms[1:]

	if len(placeable) > 0 && len(cfg.Creatures) > 0 {
		for i := 0; i < cfg.CreatureCount; i++ {
			room := placeable[i%len(placeable)]
			p, ok := pickFree(room, cfg, taken)
			if !ok {
				continue
			}
			taken[p] = true
			id := cfg.Creatures[cfg.Rand.Intn(len(cfg.Creatures))]
			pop.Creatures = append(pop.Creatures, Spawn{ID: id, Pos: p})
		}
	}

	for i := 0; i < cfg.ItemCount && len(cfg.Items) > 0; i++ {
		room := l.Rooms[cfg.Rand.Intn(len(l.Rooms))]
		x := room.X1 + cfg.Rand.Intn(room.X2-room.X1+1)
		y := room.Y1 + cfg.Rand.Intn(room.Y2-room.Y1+1)
		id := cfg.Items[cfg.Rand.Intn(len(cfg.Items))]
		pop.Items = append(pop.Items, Spawn{ID: id, Pos: grid.P(x, y)})
	}
	return pop
}

// pickFree tries random cells in room first, then falls back to a scan.
func pickFree(room gamemap.Rect, cfg Config, taken map[grid.Point]bool) (grid.Point, bool) {
	w, h := room.X2-room.X1+1, room.Y2-room.Y1+1
	for range 20 {
		p := grid.P(room.X1+cfg.Rand.Intn(w), room.Y1+cfg.Rand.Intn(h))
		if !taken[p] {
			return p, true
		}
	}
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			if p := grid.P(x, y); !taken[p] {
				return p, true
			}
		}
	}
	return grid.Point{}, false
}
