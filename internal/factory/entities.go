// Package factory assembles sandbox entities from asset definitions.
package factory

import (
	"blastradius/assets"
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at p.
func NewPlayer(w *ecs.World, p grid.Point) ecs.EntityID {
	id := newBody(w, assets.Player, p, tcell.ColorYellow, 10)
	w.Add(id, component.TagPlayer{})
	return id
}

// NewCreature creates a creature from def at p.
func NewCreature(w *ecs.World, def assets.CreatureDef, p grid.Point) ecs.EntityID {
	color := tcell.ColorRed
	if def.Electronic {
		color = tcell.ColorSilver
	}
	return newBody(w, def, p, color, 5)
}

func newBody(w *ecs.World, def assets.CreatureDef, p grid.Point, color tcell.Color, order int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(p))
	w.Add(id, component.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Add(id, component.Renderable{
		Name:        def.Name,
		Glyph:       def.Glyph,
		FGColor:     color,
		RenderOrder: order,
	})
	w.Add(id, component.Body{Size: def.Size, WeightGrams: def.WeightGrams, Humanoid: def.Humanoid})
	w.Add(id, component.Armor{Bash: def.BashArmor, Cut: def.CutArmor})
	w.Add(id, component.Senses{Sees: def.Sees, Hears: def.Hears, Electronic: def.Electronic})
	w.Add(id, component.Effects{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewItem builds a map item from def.
func NewItem(def assets.ItemDef) gamemap.Item {
	return gamemap.Item{Name: def.Name, Glyph: def.Glyph, HP: def.HP}
}
