package render

import (
	"blastradius/assets"
	"blastradius/internal/gamemap"
	"blastradius/internal/world"

	"github.com/gdamore/tcell/v2"
)

var (
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleDimFloor = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack)
	styleDim      = tcell.StyleDefault.Background(tcell.ColorBlack).Dim(true)
	styleFull     = tcell.StyleDefault.Background(tcell.NewRGBColor(120, 20, 0))
	styleHalf     = tcell.StyleDefault.Background(tcell.NewRGBColor(90, 60, 0))
	styleTarget   = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 40, 90))
	styleCursor   = tcell.StyleDefault.Reverse(true)
)

// tileGlyph is the terrain glyph for t, ignoring its contents.
func tileGlyph(t *gamemap.Tile) string {
	switch t.Kind {
	case gamemap.TileWall:
		return assets.GlyphWall
	case gamemap.TileDoor:
		return assets.GlyphDoor
	case gamemap.TileBrokenDoor:
		return "/"
	case gamemap.TileWindow:
		return assets.GlyphWindow
	case gamemap.TileBrokenWindow:
		return "-"
	case gamemap.TileRubble:
		return assets.GlyphRubble
	case gamemap.TileOpenAir:
		return " "
	case gamemap.TileStairsDown:
		return assets.GlyphStairsDown
	case gamemap.TileStairsUp:
		return assets.GlyphStairsUp
	}
	return "."
}

// fieldOrder is the priority in which fields show through; the first
// present wins.
var fieldOrder = [...]struct {
	f     world.FieldType
	glyph string
}{
	{world.FieldFire, assets.GlyphFire},
	{world.FieldNukeGas, assets.GlyphGas},
	{world.FieldSlime, assets.GlyphGoo},
	{world.FieldBile, assets.GlyphGoo},
	{world.FieldAcid, assets.GlyphGoo},
	{world.FieldBlood, assets.GlyphBlood},
	{world.FieldSmoke, assets.GlyphSmoke},
}

func fieldGlyph(t *gamemap.Tile) (string, bool) {
	for _, e := range fieldOrder {
		if t.Fields[e.f] > 0 {
			return e.glyph, true
		}
	}
	return "", false
}

func trapGlyph(trap world.Trap) string {
	if trap == world.TrapGoo {
		return assets.GlyphGoo
	}
	return assets.GlyphPortal
}
