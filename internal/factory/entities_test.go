package factory

import (
	"testing"

	"blastradius/assets"
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, grid.Point{X: 5, Y: 3, Z: 1})

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	pos := w.Get(id, component.CPosition)
	if pos == nil {
		t.Fatal("player must have CPosition")
	}
	if p := pos.(component.Position); p.X != 5 || p.Y != 3 || p.Z != 1 {
		t.Errorf("position = %+v; want (5,3,1)", p)
	}
	hp := w.Get(id, component.CHealth)
	if hp == nil {
		t.Fatal("player must have CHealth")
	}
	if h := hp.(component.Health); h.Current != assets.Player.MaxHP || h.Max != assets.Player.MaxHP {
		t.Errorf("HP = %d/%d; want %d", h.Current, h.Max, assets.Player.MaxHP)
	}
	if w.Get(id, component.CEffects) == nil {
		t.Error("player must have CEffects")
	}
	if !w.Has(id, component.CTagPlayer) {
		t.Error("player must have CTagPlayer")
	}
	if !w.Has(id, component.CTagBlocking) {
		t.Error("player must have CTagBlocking")
	}
}

func TestNewCreatureComponents(t *testing.T) {
	def := assets.CreatureDef{
		ID: "crab", Name: "crab", Glyph: "🦀", MaxHP: 8,
		Size: world.SizeSmall, WeightGrams: 3000, BashArmor: 4, Hears: true,
	}
	w := ecs.NewWorld()
	id := NewCreature(w, def, grid.P(7, 9))

	if p := w.Get(id, component.CPosition).(component.Position); p.X != 7 || p.Y != 9 {
		t.Errorf("position = (%d,%d); want (7,9)", p.X, p.Y)
	}
	if h := w.Get(id, component.CHealth).(component.Health); h.Max != def.MaxHP {
		t.Errorf("max HP = %d; want %d", h.Max, def.MaxHP)
	}
	body := w.Get(id, component.CBody).(component.Body)
	if body.Size != world.SizeSmall || body.WeightGrams != 3000 || body.Humanoid {
		t.Errorf("unexpected body %+v", body)
	}
	if a := w.Get(id, component.CArmor).(component.Armor); a.Bash != 4 {
		t.Errorf("bash armor = %v; want 4", a.Bash)
	}
	if s := w.Get(id, component.CSenses).(component.Senses); s.Sees || !s.Hears {
		t.Errorf("unexpected senses %+v", s)
	}
	if w.Has(id, component.CTagPlayer) {
		t.Error("creatures are not the player")
	}
}

func TestNewItem(t *testing.T) {
	def, _ := assets.Item("bottle")
	it := NewItem(def)
	if it.Name != def.Name || it.HP != def.HP {
		t.Errorf("got %+v from %+v", it, def)
	}
}
