// Package scenario loads sandbox arenas from YAML.
package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"blastradius/assets"
	"blastradius/internal/arena"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
	"blastradius/internal/world"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyLayout = errors.New("scenario: empty layout")
	ErrUnknownTile = errors.New("scenario: unknown tile")
)

// playerGlyph marks the player's start in a layout. The cell is floor.
const playerGlyph = '@'

// Scenario is one arena file. Layout rows are read top to bottom; each
// rune is looked up in Legend, then in the built-in legend.
type Scenario struct {
	Name      string            `yaml:"name"`
	Layout    []string          `yaml:"layout"`
	Legend    map[string]string `yaml:"legend"` // glyph -> tile name
	Occupants []Spawn           `yaml:"occupants"`
	Items     []Spawn           `yaml:"items"`
	Fields    []FieldSpawn      `yaml:"fields"`
	Vehicles  []VehicleSpawn    `yaml:"vehicles"`
}

type Spawn struct {
	ID string `yaml:"id"` // bestiary or item ID
	X  int    `yaml:"x"`
	Y  int    `yaml:"y"`
}

type FieldSpawn struct {
	Field     string `yaml:"field"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Intensity int    `yaml:"intensity"`
}

type VehicleSpawn struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	HP     int    `yaml:"hp"`
	Skewed bool   `yaml:"skewed"` // parked at an angle
}

var tileNames = map[string]func() gamemap.Tile{
	"wall":          gamemap.MakeWall,
	"floor":         gamemap.MakeFloor,
	"door":          gamemap.MakeDoor,
	"broken_door":   gamemap.MakeBrokenDoor,
	"window":        gamemap.MakeWindow,
	"broken_window": gamemap.MakeBrokenWindow,
	"rubble":        gamemap.MakeRubble,
	"open_air":      gamemap.MakeOpenAir,
	"stairs_up":     gamemap.MakeStairsUp,
	"stairs_down":   gamemap.MakeStairsDown,
}

var defaultLegend = map[rune]string{
	'#': "wall",
	'.': "floor",
	'+': "door",
	'/': "broken_door",
	'=': "window",
	'-': "broken_window",
	':': "rubble",
	'<': "stairs_up",
	'>': "stairs_down",
	' ': "open_air",
	'@': "floor",
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario and checks its layout.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Layout) == 0 || s.Width() == 0 {
		return nil, ErrEmptyLayout
	}
	for y, row := range s.Layout {
		for x, r := range []rune(row) {
			if _, err := s.tile(r); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
		}
	}
	return &s, nil
}

// Width is the length of the longest layout row.
func (s *Scenario) Width() int {
	w := 0
	for _, row := range s.Layout {
		w = max(w, len([]rune(row)))
	}
	return w
}

// Height is the number of layout rows.
func (s *Scenario) Height() int { return len(s.Layout) }

// Start is where the player begins, if the layout marks it.
func (s *Scenario) Start() (grid.Point, bool) {
	for y, row := range s.Layout {
		for x, r := range []rune(row) {
			if r == playerGlyph {
				return grid.P(x, y), true
			}
		}
	}
	return grid.Point{}, false
}

func (s *Scenario) tile(r rune) (gamemap.Tile, error) {
	name, ok := s.Legend[string(r)]
	if !ok {
		name, ok = defaultLegend[r]
	}
	if !ok {
		return gamemap.Tile{}, fmt.Errorf("%w %q", ErrUnknownTile, r)
	}
	mk, ok := tileNames[name]
	if !ok {
		return gamemap.Tile{}, fmt.Errorf("%w %q for glyph %q", ErrUnknownTile, name, r)
	}
	return mk(), nil
}

// Build lays the scenario out as a fresh single-level arena. Rows shorter
// than the widest are padded with wall.
func (s *Scenario) Build(rng *rand.Rand, log *zap.Logger) (*arena.Arena, error) {
	m := gamemap.New(s.Width(), s.Height(), 1)
	for y, row := range s.Layout {
		for x, r := range []rune(row) {
			t, err := s.tile(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			m.Set(grid.P(x, y), t)
		}
	}
	a := arena.New(m, rng, log)

	if p, ok := s.Start(); ok {
		if _, err := a.SpawnPlayer(p); err != nil {
			return nil, fmt.Errorf("player: %w", err)
		}
	}
	for _, o := range s.Occupants {
		def, ok := assets.Creature(o.ID)
		if !ok {
			return nil, fmt.Errorf("occupant %q: not in bestiary", o.ID)
		}
		if _, err := a.Spawn(def, grid.P(o.X, o.Y)); err != nil {
			return nil, fmt.Errorf("occupant %q: %w", o.ID, err)
		}
	}
	for _, it := range s.Items {
		def, ok := assets.Item(it.ID)
		if !ok {
			return nil, fmt.Errorf("item %q: unknown", it.ID)
		}
		a.DropItem(def, grid.P(it.X, it.Y))
	}
	for _, f := range s.Fields {
		ft, ok := world.ParseField(f.Field)
		if !ok {
			return nil, fmt.Errorf("field %q: unknown", f.Field)
		}
		a.AddField(grid.P(f.X, f.Y), ft, max(f.Intensity, 1))
	}
	for _, v := range s.Vehicles {
		p := grid.P(v.X, v.Y)
		if !m.InBounds(p) {
			return nil, fmt.Errorf("vehicle %q at %v: out of bounds", v.Name, p)
		}
		m.At(p).Vehicle = &gamemap.VehiclePart{Name: v.Name, HP: v.HP, Skewed: v.Skewed}
	}
	return a, nil
}
