package scenario

import (
	"errors"
	"math/rand"
	"testing"

	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
	"blastradius/internal/world"
)

const small = `
name: closet
layout:
  - "#####"
  - "#@.+#"
  - "#.x=#"
  - "####"
legend:
  x: rubble
occupants:
  - {id: dog, x: 2, y: 1}
items:
  - {id: bottle, x: 1, y: 2}
fields:
  - {field: fire, x: 2, y: 2, intensity: 2}
vehicles:
  - {name: wheel, x: 1, y: 2, hp: 30}
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(small))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Width() != 5 || s.Height() != 4 {
		t.Fatalf("size = %dx%d; want 5x4", s.Width(), s.Height())
	}
	a, err := s.Build(rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cases := []struct {
		p    grid.Point
		want gamemap.TileKind
	}{
		{grid.P(0, 0), gamemap.TileWall},
		{grid.P(1, 1), gamemap.TileFloor},
		{grid.P(3, 1), gamemap.TileDoor},
		{grid.P(2, 2), gamemap.TileRubble},
		{grid.P(3, 2), gamemap.TileWindow},
		{grid.P(4, 3), gamemap.TileWall}, // padding
	}
	for _, c := range cases {
		if got := a.Map.At(c.p).Kind; got != c.want {
			t.Errorf("tile %v kind = %d; want %d", c.p, got, c.want)
		}
	}

	if o, ok := a.OccupantAt(grid.P(1, 1)); !ok || !o.Player() {
		t.Error("the player should start on the @")
	}
	if o, ok := a.OccupantAt(grid.P(2, 1)); !ok || o.Name() != "dog" {
		t.Error("expected a dog at (2,1)")
	}
	if items := a.Map.At(grid.P(1, 2)).Items; len(items) != 1 || items[0].Name != "bottle" {
		t.Errorf("items at (1,2) = %v", items)
	}
	if a.Map.At(grid.P(2, 2)).Fields[world.FieldFire] != 2 {
		t.Error("expected fire at (2,2)")
	}
	if !a.HasVehicle(grid.P(1, 2)) {
		t.Error("expected a vehicle part at (1,2)")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		is   error
	}{
		{"no layout", "name: void\n", ErrEmptyLayout},
		{"blank rows", "layout: [\"\", \"\"]\n", ErrEmptyLayout},
		{"unknown glyph", "layout: [\"#?#\"]\n", ErrUnknownTile},
		{"unknown legend tile", "layout: [\"#x#\"]\nlegend: {x: lava}\n", ErrUnknownTile},
		{"bad yaml", "layout: [\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("err = %v; want %v", err, tc.is)
			}
		})
	}
}

func TestBuildRejectsBadSpawns(t *testing.T) {
	cases := map[string]string{
		"unknown creature": "layout: [\"...\"]\noccupants: [{id: dragon, x: 1, y: 0}]\n",
		"spawn in wall":    "layout: [\".#.\"]\noccupants: [{id: dog, x: 1, y: 0}]\n",
		"unknown item":     "layout: [\"...\"]\nitems: [{id: sword, x: 1, y: 0}]\n",
		"unknown field":    "layout: [\"...\"]\nfields: [{field: lava, x: 1, y: 0}]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Parse([]byte(doc))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := s.Build(rand.New(rand.NewSource(1)), nil); err == nil {
				t.Error("expected Build to fail")
			}
		})
	}
}

func TestWarehouseLoads(t *testing.T) {
	s, err := Load("../../scenarios/warehouse.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, err := s.Build(rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(a.Creatures()) != 8 {
		t.Errorf("got %d creatures; want the player and 7 others", len(a.Creatures()))
	}
}
