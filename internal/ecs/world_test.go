package ecs_test

import (
	"testing"

	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/grid"
)

// body spawns an entity the way the arena does: a position, health and the
// blocking tag.
func body(w *ecs.World, p grid.Point, hp int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(p))
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.TagBlocking{})
	return id
}

func TestCreateAndGet(t *testing.T) {
	w := ecs.NewWorld()
	id := body(w, grid.P(3, 4), 40)
	if id == ecs.NilEntity || !w.Alive(id) {
		t.Fatalf("new entity %v should be alive and non-nil", id)
	}
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok || pos.Point() != grid.P(3, 4) {
		t.Fatalf("position = %+v; want (3,4)", pos)
	}
	w.Add(id, component.Health{Current: 12, Max: 40})
	if hp := w.Get(id, component.CHealth).(component.Health); hp.Current != 12 {
		t.Errorf("Add should replace: hp = %d; want 12", hp.Current)
	}
}

func TestDestroyedOccupantDisappears(t *testing.T) {
	w := ecs.NewWorld()
	keep := body(w, grid.P(1, 1), 10)
	gone := body(w, grid.P(2, 1), 10)
	w.DestroyEntity(gone)
	w.DestroyEntity(gone)

	if w.Alive(gone) || w.Get(gone, component.CHealth) != nil {
		t.Fatal("destroyed entity kept its components")
	}
	w.Add(gone, component.TagPlayer{})
	if w.Has(gone, component.CTagPlayer) {
		t.Error("a destroyed entity must not gain components")
	}
	got := w.Query(component.CPosition, component.CTagBlocking)
	if len(got) != 1 || got[0] != keep {
		t.Errorf("Query = %v; want only %v", got, keep)
	}
	if w.Count() != 1 {
		t.Errorf("Count = %d; want 1", w.Count())
	}
}

func TestQueryNeedsEveryType(t *testing.T) {
	w := ecs.NewWorld()
	player := body(w, grid.P(0, 0), 80)
	w.Add(player, component.TagPlayer{})
	body(w, grid.P(5, 0), 20)

	if got := w.Query(component.CTagPlayer, component.CHealth); len(got) != 1 || got[0] != player {
		t.Errorf("Query(player, health) = %v; want [%v]", got, player)
	}
	if got := w.Query(); got != nil {
		t.Errorf("empty Query = %v; want nil", got)
	}

	w.Remove(player, component.CTagPlayer)
	w.Remove(player, component.CEffects)
	if w.Has(player, component.CTagPlayer) {
		t.Error("Remove left the tag behind")
	}
}

// Damage is applied to occupants in query order, so a seeded run must see
// the same order every time.
func TestQueryOrderedByID(t *testing.T) {
	w := ecs.NewWorld()
	var want []ecs.EntityID
	for i := range 20 {
		want = append(want, body(w, grid.P(i, 0), i+1))
	}
	for range 5 {
		got := w.Query(component.CPosition, component.CHealth)
		if len(got) != len(want) {
			t.Fatalf("got %d results; want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("result %d = %v; want %v", i, got[i], want[i])
			}
		}
	}
}

func TestEachVisitsInOrder(t *testing.T) {
	w := ecs.NewWorld()
	for i := 1; i <= 3; i++ {
		body(w, grid.P(i, 0), i*10)
	}
	var hp []int
	w.Each(component.CHealth, func(_ ecs.EntityID, c ecs.Component) {
		hp = append(hp, c.(component.Health).Current)
	})
	if len(hp) != 3 || hp[0] != 10 || hp[1] != 20 || hp[2] != 30 {
		t.Errorf("Each visited %v; want [10 20 30]", hp)
	}
}
