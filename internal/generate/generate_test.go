package generate

import (
	"math/rand"
	"testing"

	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
)

func testConfig(seed int64) Config {
	return DefaultConfig(60, 30, rand.New(rand.NewSource(seed)))
}

func open(k gamemap.TileKind) bool {
	return k == gamemap.TileFloor || k == gamemap.TileDoor
}

// TestRoomsConnected flood-fills from the start and expects to reach every
// floor tile, walking through doors.
func TestRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		l := Rooms(testConfig(seed))
		m := l.Map
		if len(l.Rooms) < 2 {
			t.Fatalf("seed=%d: only %d rooms", seed, len(l.Rooms))
		}
		if m.At(l.Start).Kind != gamemap.TileFloor {
			t.Fatalf("seed=%d: start %v is not floor", seed, l.Start)
		}

		seen := map[grid.Point]bool{l.Start: true}
		queue := []grid.Point{l.Start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range []grid.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
				n := cur.Add(d)
				if !m.InBounds(n) || seen[n] || !open(m.At(n).Kind) {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}

		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				p := grid.P(x, y)
				if open(m.At(p).Kind) && !seen[p] {
					t.Errorf("seed=%d: %v unreachable from start", seed, p)
				}
			}
		}
	}
}

func TestBorderStaysSolid(t *testing.T) {
	l := Rooms(testConfig(3))
	m := l.Map
	for x := 0; x < m.Width; x++ {
		for _, y := range []int{0, m.Height - 1} {
			if k := m.At(grid.P(x, y)).Kind; k != gamemap.TileWall {
				t.Errorf("border %d,%d is %v, want wall", x, y, k)
			}
		}
	}
	for y := 0; y < m.Height; y++ {
		for _, x := range []int{0, m.Width - 1} {
			if k := m.At(grid.P(x, y)).Kind; k != gamemap.TileWall {
				t.Errorf("border %d,%d is %v, want wall", x, y, k)
			}
		}
	}
}

func TestCorridorStyles(t *testing.T) {
	for _, style := range []CorridorStyle{CorridorLShaped, CorridorZShaped, CorridorStraight} {
		m := gamemap.New(20, 20, 1)
		cfg := testConfig(1)
		cfg.Corridors = style
		a, b := grid.P(2, 3), grid.P(15, 16)
		carveCorridor(m, a, b, &cfg)
		for _, p := range []grid.Point{a, b} {
			if m.At(p).Kind != gamemap.TileFloor {
				t.Errorf("style %d: endpoint %v not carved", style, p)
			}
		}
	}
}

func TestDecoratePlacesDoorsAndWindows(t *testing.T) {
	// Two rooms split by a one-thick wall, joined by a corridor stub at x=6.
	m := gamemap.New(13, 9, 1)
	left := gamemap.Rect{X1: 1, Y1: 1, X2: 5, Y2: 7}
	right := gamemap.Rect{X1: 7, Y1: 1, X2: 11, Y2: 7}
	m.Fill(left, 0, gamemap.MakeFloor())
	m.Fill(right, 0, gamemap.MakeFloor())

	cfg := testConfig(1)
	cfg.DoorChance, cfg.WindowChance = 0, 100
	decorate(m, []gamemap.Rect{left, right}, &cfg)
	for y := 1; y <= 7; y++ {
		if k := m.At(grid.P(6, y)).Kind; k != gamemap.TileWindow {
			t.Errorf("partition at 6,%d is %v, want window", y, k)
		}
	}

	// A corridor tile with walls on both sides next to a room gets a door.
	m = gamemap.New(9, 9, 1)
	room := gamemap.Rect{X1: 2, Y1: 1, X2: 6, Y2: 3}
	m.Fill(room, 0, gamemap.MakeFloor())
	m.Fill(gamemap.Rect{X1: 4, Y1: 4, X2: 4, Y2: 7}, 0, gamemap.MakeFloor())
	cfg.DoorChance, cfg.WindowChance = 100, 0
	decorate(m, []gamemap.Rect{room}, &cfg)
	if k := m.At(grid.P(4, 4)).Kind; k != gamemap.TileDoor {
		t.Errorf("corridor mouth is %v, want door", k)
	}
	if k := m.At(grid.P(4, 6)).Kind; k != gamemap.TileFloor {
		t.Errorf("corridor interior is %v, want floor", k)
	}
}

func TestPopulate(t *testing.T) {
	cfg := testConfig(5)
	cfg.CreatureCount = 8
	cfg.ItemCount = 4
	l := Rooms(cfg)
	pop := Populate(l, cfg)

	if len(pop.Creatures) != 8 {
		t.Fatalf("creatures = %d, want 8", len(pop.Creatures))
	}
	if len(pop.Items) != 4 {
		t.Errorf("items = %d, want 4", len(pop.Items))
	}
	seen := map[grid.Point]bool{}
	for _, c := range pop.Creatures {
		if c.Pos == l.Start {
			t.Errorf("%s spawned on the player start", c.ID)
		}
		if seen[c.Pos] {
			t.Errorf("two creatures at %v", c.Pos)
		}
		seen[c.Pos] = true
		if l.Map.At(c.Pos).Kind != gamemap.TileFloor {
			t.Errorf("%s at %v is not on floor", c.ID, c.Pos)
		}
		if l.Rooms[0].Contains(c.Pos.X, c.Pos.Y) {
			t.Errorf("%s spawned in the start room", c.ID)
		}
	}
}

func TestPopulateEmptyLayout(t *testing.T) {
	pop := Populate(Layout{Map: gamemap.New(5, 5, 1)}, testConfig(1))
	if len(pop.Creatures) != 0 || len(pop.Items) != 0 {
		t.Errorf("empty layout populated: %+v", pop)
	}
}
