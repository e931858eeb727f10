package assets

// ItemDef is debris scenarios may scatter on the floor.
type ItemDef struct {
	ID    string
	Name  string
	Glyph string
	HP    int
}

// Items lists every item scenarios may refer to by ID.
var Items = []ItemDef{
	{ID: "bottle", Name: "glass bottle", Glyph: "🍾", HP: 4},
	{ID: "crate", Name: "wooden crate", Glyph: GlyphGenericItem, HP: 30},
	{ID: "can", Name: "tin can", Glyph: "🥫", HP: 12},
	{ID: "anvil", Name: "anvil", Glyph: "⚒️", HP: 500},
	{ID: "phone", Name: "smartphone", Glyph: "📱", HP: 6},
}

// Item looks a definition up by ID.
func Item(id string) (ItemDef, bool) {
	for _, d := range Items {
		if d.ID == id {
			return d, true
		}
	}
	return ItemDef{}, false
}
