// Package generate lays out procedural sandbox arenas: rooms carved out of
// solid rock by binary space partitioning, joined by corridors and stocked
// with creatures and debris.
package generate

import (
	"math/rand"

	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives generation of one level.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	Corridors     CorridorStyle
	DoorChance    int // percent of doorways that get a door
	WindowChance  int // percent of thin partitions that get a window
	Creatures     []string
	CreatureCount int
	Items         []string
	ItemCount     int
	Rand          *rand.Rand
}

// DefaultConfig is a level of small rooms sized to fit w by h.
func DefaultConfig(w, h int, rng *rand.Rand) Config {
	return Config{
		Width:         w,
		Height:        h,
		MinLeafSize:   6,
		MaxLeafSize:   16,
		MinRoomSize:   3,
		RoomPadding:   1,
		DoorChance:    50,
		WindowChance:  25,
		Creatures:     []string{"zombie", "zombie", "soldier", "dog", "rat", "turret"},
		CreatureCount: max(2, w*h/150),
		Items:         []string{"bottle", "crate", "can", "phone"},
		ItemCount:     max(1, w*h/300),
		Rand:          rng,
	}
}

// Layout is a generated level before anything is spawned into it.
type Layout struct {
	Map   *gamemap.GameMap
	Rooms []gamemap.Rect
	Start grid.Point
}

type leaf struct {
	x, y, w, h  int
	left, right *leaf
	room        *gamemap.Rect
}

func (l *leaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	horizontal := cfg.Rand.Intn(2) == 0
	if l.w > l.h && float64(l.w)/float64(l.h) >= 1.25 {
		horizontal = false
	} else if l.h > l.w && float64(l.h)/float64(l.w) >= 1.25 {
		horizontal = true
	}

	size := l.w
	if horizontal {
		size = l.h
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if horizontal {
		l.left = &leaf{x: l.x, y: l.y, w: l.w, h: at}
		l.right = &leaf{x: l.x, y: l.y + at, w: l.w, h: l.h - at}
	} else {
		l.left = &leaf{x: l.x, y: l.y, w: at, h: l.h}
		l.right = &leaf{x: l.x + at, y: l.y, w: l.w - at, h: l.h}
	}
	return true
}

// carveRooms places one room in every terminal leaf.
func (l *leaf) carveRooms(m *gamemap.GameMap, cfg *Config, rooms *[]gamemap.Rect) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.carveRooms(m, cfg, rooms)
		}
		if l.right != nil {
			l.right.carveRooms(m, cfg, rooms)
		}
		return
	}
	pad := cfg.RoomPadding
	availW := max(cfg.MinRoomSize, l.w-2*pad)
	availH := max(cfg.MinRoomSize, l.h-2*pad)
	rw := min(cfg.MinRoomSize+cfg.Rand.Intn(availW-cfg.MinRoomSize+1), l.w-2*pad)
	rh := min(cfg.MinRoomSize+cfg.Rand.Intn(availH-cfg.MinRoomSize+1), l.h-2*pad)
	rx := l.x + pad + cfg.Rand.Intn(max(1, l.w-rw-2*pad+1))
	ry := l.y + pad + cfg.Rand.Intn(max(1, l.h-rh-2*pad+1))

	// Keep a solid border around the map.
	rx, ry = max(rx, 1), max(ry, 1)
	rw = min(rw, m.Width-rx-1)
	rh = min(rh, m.Height-ry-1)
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	m.Fill(room, 0, gamemap.MakeFloor())
	*rooms = append(*rooms, room)
}

func (l *leaf) anyRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	for _, c := range []*leaf{l.left, l.right} {
		if c == nil {
			continue
		}
		if r := c.anyRoom(); r != nil {
			return r
		}
	}
	return nil
}

// connect joins sibling subtrees bottom up, so every room ends up reachable.
func (l *leaf) connect(m *gamemap.GameMap, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connect(m, cfg)
	l.right.connect(m, cfg)

	a, b := l.left.anyRoom(), l.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(m, grid.P(ax, ay), grid.P(bx, by), cfg)
}

// Rooms generates a single-level layout. The player starts in the centre of
// the first room.
func Rooms(cfg Config) Layout {
	m := gamemap.New(cfg.Width, cfg.Height, 1)
	root := &leaf{w: cfg.Width, h: cfg.Height}

	leaves := []*leaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*leaf
		for _, l := range leaves {
			if l.left != nil || l.right != nil {
				next = append(next, l.left, l.right)
				continue
			}
			if (l.w > cfg.MaxLeafSize || l.h > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25) && l.split(&cfg) {
				next = append(next, l.left, l.right)
				splitAny = true
				continue
			}
			next = append(next, l)
		}
		leaves = next
	}

	var rooms []gamemap.Rect
	root.carveRooms(m, &cfg, &rooms)
	root.connect(m, &cfg)
	decorate(m, rooms, &cfg)

	start := grid.P(1, 1)
	if len(rooms) > 0 {
		start = grid.P(rooms[0].Center())
	} else {
		m.Set(start, gamemap.MakeFloor())
	}
	return Layout{Map: m, Rooms: rooms, Start: start}
}
