package wavefront

import (
	"math"
	"math/rand"
	"testing"

	"blastradius/assets"
	"blastradius/internal/arena"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

func openArena(t *testing.T) *arena.Arena {
	t.Helper()
	return arena.Open(11, 11, rand.New(rand.NewSource(7)), nil)
}

func octile(a, b grid.Point) float64 {
	d := a.Sub(b).Abs()
	lo, hi := min(d.X, d.Y), max(d.X, d.Y)
	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

func nodeAt(e *Expander, p grid.Point) (Node, bool) {
	for _, n := range e.Nodes() {
		if n.Pos == p {
			return n, true
		}
	}
	return Node{}, false
}

func TestRunOpenFloorCosts(t *testing.T) {
	a := openArena(t)
	center := grid.P(5, 5)
	e := &Expander{MaxRange: 2}
	if n := e.Run(a, center); n != 25 {
		t.Errorf("expanded %d cells; want 25", n)
	}
	if len(e.Nodes()) != 25 {
		t.Fatalf("reached %d cells; want 25", len(e.Nodes()))
	}
	for _, n := range e.Nodes() {
		if math.Abs(n.Cost-octile(center, n.Pos)) > 1e-9 {
			t.Errorf("%v cost %.3f; want %.3f", n.Pos, n.Cost, octile(center, n.Pos))
		}
		if n.Pos != center && grid.SquareDist(n.Pos, n.From) != 1 {
			t.Errorf("%v reached from non-adjacent %v", n.Pos, n.From)
		}
	}
	if c, _ := nodeAt(e, center); c.From != center || c.Cost != 0 {
		t.Errorf("center node %+v", c)
	}
}

func TestRunRoutesAroundWalls(t *testing.T) {
	a := openArena(t)
	a.Map.Set(grid.P(6, 5), gamemap.MakeWall())
	e := &Expander{MaxRange: 2}
	e.Run(a, grid.P(5, 5))

	if _, ok := nodeAt(e, grid.P(6, 5)); ok {
		t.Error("walls are never reached")
	}
	n, ok := nodeAt(e, grid.P(7, 5))
	if !ok {
		t.Fatal("(7,5) should be reached around the wall")
	}
	if math.Abs(n.Cost-2*math.Sqrt2) > 1e-9 {
		t.Errorf("cost around the wall = %.3f; want %.3f", n.Cost, 2*math.Sqrt2)
	}
}

func TestRunExpansionBudget(t *testing.T) {
	a := openArena(t)
	e := &Expander{MaxExpand: 1}
	e.Run(a, grid.P(5, 5))
	if len(e.Nodes()) != 9 {
		t.Errorf("reached %d cells; want the center and its 8 neighbours", len(e.Nodes()))
	}
}

func TestSortOrders(t *testing.T) {
	a := openArena(t)
	e := &Expander{MaxRange: 2}
	e.Run(a, grid.P(5, 5))

	e.SortAscending()
	nodes := e.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Cost < nodes[i-1].Cost {
			t.Fatalf("ascending order broken at %d", i)
		}
	}
	e.SortDescending()
	nodes = e.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Cost > nodes[i-1].Cost {
			t.Fatalf("descending order broken at %d", i)
		}
	}
	if nodes[len(nodes)-1].Pos != grid.P(5, 5) {
		t.Error("the center is the cheapest node")
	}
}

func TestPushMovesItemStackOutward(t *testing.T) {
	a := openArena(t)
	center := grid.P(5, 5)
	bottle, _ := assets.Item("bottle")
	crate, _ := assets.Item("crate")
	a.DropItem(bottle, center)
	a.DropItem(crate, center)

	ApplyPushPull(a, center, 2, true, MoveOptions{Items: true})

	if n := len(a.Map.At(center).Items); n != 0 {
		t.Fatalf("%d items left at the center", n)
	}
	total := 0
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			p := grid.P(x, y)
			items := a.Map.At(p).Items
			if len(items) == 0 {
				continue
			}
			total += len(items)
			if d := grid.SquareDist(center, p); d < 1 || d > 2 {
				t.Errorf("items landed at %v, distance %d", p, d)
			}
		}
	}
	if total != 2 {
		t.Errorf("%d items after the push; want 2", total)
	}
}

func TestPullDrawsCreatureInward(t *testing.T) {
	a := openArena(t)
	dog, _ := assets.Creature("dog")
	a.Spawn(dog, grid.P(7, 5))

	ApplyPushPull(a, grid.P(5, 5), 2, false, MoveOptions{Creatures: true})

	if _, ok := a.OccupantAt(grid.P(6, 5)); !ok {
		t.Error("the dog should be pulled one step toward the center")
	}
}

func TestPushExemptsCaster(t *testing.T) {
	a := openArena(t)
	id, _ := a.SpawnPlayer(grid.P(6, 5))

	ApplyPushPull(a, grid.P(5, 5), 2, true, MoveOptions{
		Creatures:    true,
		Caster:       world.OccupantID(id),
		ExemptCaster: true,
	})
	if o, ok := a.OccupantAt(grid.P(6, 5)); !ok || !o.Player() {
		t.Error("the caster must stay put")
	}
}

func TestPushCarriesFields(t *testing.T) {
	a := openArena(t)
	center := grid.P(5, 5)
	a.AddField(center, world.FieldSmoke, 3)

	ApplyPushPull(a, center, 1, true, MoveOptions{Fields: true})

	if len(a.Map.At(center).Fields) != 0 {
		t.Error("smoke should be pushed off the center")
	}
}
