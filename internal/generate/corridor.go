package generate

import (
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
)

// carveCorridor digs a tunnel from a to b in the configured style.
func carveCorridor(m *gamemap.GameMap, a, b grid.Point, cfg *Config) {
	switch cfg.Corridors {
	case CorridorZShaped:
		mid := (a.Y + b.Y) / 2
		carveV(m, a.Y, mid, a.X)
		carveH(m, a.X, b.X, mid)
		carveV(m, mid, b.Y, b.X)
	case CorridorStraight:
		carveH(m, a.X, b.X, a.Y)
		carveV(m, a.Y, b.Y, b.X)
	default:
		if cfg.Rand.Intn(2) == 0 {
			carveH(m, a.X, b.X, a.Y)
			carveV(m, a.Y, b.Y, b.X)
		} else {
			carveV(m, a.Y, b.Y, a.X)
			carveH(m, a.X, b.X, b.Y)
		}
	}
}

func carveH(m *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		dig(m, grid.P(x, y))
	}
}

func carveV(m *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		dig(m, grid.P(x, y))
	}
}

// dig opens a cell, leaving the outer border intact.
func dig(m *gamemap.GameMap, p grid.Point) {
	if p.X > 0 && p.Y > 0 && p.X < m.Width-1 && p.Y < m.Height-1 {
		m.Set(p, gamemap.MakeFloor())
	}
}

// decorate hangs doors in corridor mouths next to rooms and glazes some of
// the single-thickness walls between open areas.
func decorate(m *gamemap.GameMap, rooms []gamemap.Rect, cfg *Config) {
	nextToRoom := func(p grid.Point) bool {
		for _, r := range rooms {
			grown := gamemap.Rect{X1: r.X1 - 1, Y1: r.Y1 - 1, X2: r.X2 + 1, Y2: r.Y2 + 1}
			if grown.Contains(p.X, p.Y) && !r.Contains(p.X, p.Y) {
				return true
			}
		}
		return false
	}
	kind := func(x, y int) gamemap.TileKind {
		p := grid.P(x, y)
		if !m.InBounds(p) {
			return gamemap.TileWall
		}
		return m.At(p).Kind
	}

	// Decide everything against the bare layout, then apply.
	changes := map[grid.Point]gamemap.Tile{}
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			l, r, u, d := kind(x-1, y), kind(x+1, y), kind(x, y-1), kind(x, y+1)
			walledH := l == gamemap.TileWall && r == gamemap.TileWall && u == gamemap.TileFloor && d == gamemap.TileFloor
			walledV := u == gamemap.TileWall && d == gamemap.TileWall && l == gamemap.TileFloor && r == gamemap.TileFloor
			openH := l == gamemap.TileFloor && r == gamemap.TileFloor && u == gamemap.TileWall && d == gamemap.TileWall
			openV := u == gamemap.TileFloor && d == gamemap.TileFloor && l == gamemap.TileWall && r == gamemap.TileWall

			p := grid.P(x, y)
			switch m.At(p).Kind {
			case gamemap.TileFloor:
				if (walledH || walledV) && nextToRoom(p) && cfg.Rand.Intn(100) < cfg.DoorChance {
					changes[p] = gamemap.MakeDoor()
				}
			case gamemap.TileWall:
				if (openH || openV) && cfg.Rand.Intn(100) < cfg.WindowChance {
					changes[p] = gamemap.MakeWindow()
				}
			}
		}
	}
	for p, t := range changes {
		m.Set(p, t)
	}
}
