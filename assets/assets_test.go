package assets

import "testing"

func TestBestiaryIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Bestiary {
		if seen[d.ID] {
			t.Errorf("duplicate creature ID %q", d.ID)
		}
		seen[d.ID] = true
		if d.MaxHP <= 0 || d.WeightGrams <= 0 {
			t.Errorf("%s: HP and weight must be positive", d.ID)
		}
	}
}

func TestLookups(t *testing.T) {
	if d, ok := Creature("turret"); !ok || !d.Electronic {
		t.Error("turret should exist and be electronic")
	}
	if _, ok := Creature("dragon"); ok {
		t.Error("unknown creature should not resolve")
	}
	if d, ok := Item("bottle"); !ok || d.HP <= 0 {
		t.Error("bottle should exist with positive HP")
	}
}
