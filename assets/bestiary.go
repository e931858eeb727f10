package assets

import "blastradius/internal/world"

// CreatureDef describes a creature that can be placed in the sandbox.
type CreatureDef struct {
	ID          string
	Name        string
	Glyph       string
	MaxHP       int
	Size        world.Size
	WeightGrams int
	Humanoid    bool
	BashArmor   float64
	CutArmor    float64
	Sees, Hears bool
	Electronic  bool
}

// Player is the definition used for the sandbox's player character.
var Player = CreatureDef{
	ID: "player", Name: "you", Glyph: GlyphPlayer,
	MaxHP: 80, Size: world.SizeMedium, WeightGrams: 81500, Humanoid: true,
	BashArmor: 2, CutArmor: 2, Sees: true, Hears: true,
}

// Bestiary lists every creature scenarios may refer to by ID.
var Bestiary = []CreatureDef{
	{ID: "zombie", Name: "zombie", Glyph: GlyphZombie, MaxHP: 80, Size: world.SizeMedium, WeightGrams: 81500, Humanoid: true, BashArmor: 2, Sees: true, Hears: true},
	{ID: "soldier", Name: "soldier", Glyph: GlyphSoldier, MaxHP: 100, Size: world.SizeMedium, WeightGrams: 90000, Humanoid: true, BashArmor: 8, CutArmor: 10, Sees: true, Hears: true},
	{ID: "dog", Name: "dog", Glyph: GlyphDog, MaxHP: 40, Size: world.SizeSmall, WeightGrams: 25000, Sees: true, Hears: true},
	{ID: "rat", Name: "giant rat", Glyph: GlyphRat, MaxHP: 10, Size: world.SizeTiny, WeightGrams: 2000, Sees: true, Hears: true},
	{ID: "hulk", Name: "zombie hulk", Glyph: GlyphHulk, MaxHP: 400, Size: world.SizeHuge, WeightGrams: 800000, BashArmor: 12, CutArmor: 12, Sees: true, Hears: true},
	{ID: "turret", Name: "turret", Glyph: GlyphTurret, MaxHP: 120, Size: world.SizeSmall, WeightGrams: 60000, BashArmor: 14, CutArmor: 14, Sees: true, Electronic: true},
	{ID: "anomaly", Name: "anomaly", Glyph: GlyphAnomaly, MaxHP: 30, Size: world.SizeMedium, WeightGrams: 40000, Hears: true},
}

// Creature looks a definition up by ID.
func Creature(id string) (CreatureDef, bool) {
	for _, d := range Bestiary {
		if d.ID == id {
			return d, true
		}
	}
	return CreatureDef{}, false
}
