// Package render draws an arena and the effects passing through it onto a
// tcell screen.
package render

import (
	"sort"

	"blastradius/assets"
	"blastradius/internal/arena"
	"blastradius/internal/blast"
	"blastradius/internal/component"
	"blastradius/internal/grid"
	"blastradius/internal/shape"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of rows reserved under the map.
const HUDRows = 6

// Renderer draws the arena onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(grid.Point{}, w, max(h-HUDRows, 1)),
	}
}

// Resize picks up a new screen size, keeping the view centred on c.
func (r *Renderer) Resize(c grid.Point) {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(h-HUDRows, 1)
	r.camera.Center(c)
}

// CenterOn recenters the camera on p.
func (r *Renderer) CenterOn(p grid.Point) { r.camera.Center(p) }

// Camera exposes the current view.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawArena clears the screen and renders terrain, contents and occupants.
// Cells outside the player's view are drawn dimmed.
func (r *Renderer) DrawArena(a *arena.Arena) {
	r.screen.Clear()
	r.drawMap(a)
	r.drawEntities(a)
}

func (r *Renderer) drawMap(a *arena.Arena) {
	m := a.Map
	z := r.camera.Offset.Z
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := grid.Point{X: x, Y: y, Z: z}
			if !m.InBounds(p) {
				continue
			}
			t := m.At(p)
			if !t.Visible && !t.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(p)
			if !onScreen {
				continue
			}

			glyph := tileGlyph(t)
			if trap, ok := a.Traps[p]; ok {
				glyph = trapGlyph(trap)
			}
			if len(t.Items) > 0 {
				glyph = t.Items[len(t.Items)-1].Glyph
				if glyph == "" {
					glyph = assets.GlyphGenericItem
				}
			}
			if t.Vehicle != nil {
				glyph = assets.GlyphCar
			}
			if fg, ok := fieldGlyph(t); ok {
				glyph = fg
			}

			style := styleFloor
			switch {
			case !t.Visible && runewidth.StringWidth(glyph) < 2:
				style = styleDimFloor
			case !t.Visible:
				style = styleDim
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   grid.Point
	rend  component.Renderable
}

// drawEntities renders all entities with Renderable + Position, ordered by RenderOrder.
func (r *Renderer) drawEntities(a *arena.Arena) {
	ids := a.ECS.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := a.ECS.Get(id, component.CPosition).(component.Position).Point()
		rend := a.ECS.Get(id, component.CRenderable).(component.Renderable)
		// Only draw entities on visible tiles.
		if a.Map.InBounds(pos) && !a.Map.At(pos).Visible {
			continue
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Lower render order is drawn first, behind.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// DrawBlastFrame tints every cell the blast has reached: deep red at full
// force, amber at half. The blast front is marked with an explosion glyph.
func (r *Renderer) DrawBlastFrame(f blast.Frame) {
	front := frontier(f)
	for p, falloff := range f.Cells {
		sx, sy, onScreen := r.camera.WorldToScreen(p)
		if !onScreen {
			continue
		}
		style := styleHalf
		if falloff >= 1 {
			style = styleFull
		}
		glyph := blank
		if !f.Final && int(grid.TrigDist(f.Epicenter, p)) == front {
			glyph = assets.GlyphBlastFront
		}
		r.tint(sx, sy, glyph, style)
	}
}

// frontier is the furthest whole distance a frame has reached.
func frontier(f blast.Frame) int {
	d := 0
	for p := range f.Cells {
		d = max(d, int(grid.TrigDist(f.Epicenter, p)))
	}
	return d
}

// DrawTargets highlights a target set. The zero set draws nothing.
func (r *Renderer) DrawTargets(ts shape.TargetSet) {
	if ts.Size() == 0 {
		return
	}
	ts.Each(func(p grid.Point) {
		if sx, sy, ok := r.camera.WorldToScreen(p); ok {
			r.tint(sx, sy, blank, styleTarget)
		}
	})
}

// DrawCursor marks the aiming cell.
func (r *Renderer) DrawCursor(p grid.Point) {
	sx, sy, ok := r.camera.WorldToScreen(p)
	if !ok {
		return
	}
	mainc, combc, style, _ := r.screen.GetContent(sx, sy)
	r.screen.SetContent(sx, sy, mainc, combc, style.Reverse(true))
	if mainc == ' ' {
		r.screen.SetContent(sx+1, sy, ' ', nil, styleCursor)
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// blank tints a cell without replacing what is drawn on it.
const blank = " "

// tint replaces the background of a cell, drawing glyph over it unless
// glyph is blank and the cell already shows something.
func (r *Renderer) tint(sx, sy int, glyph string, style tcell.Style) {
	mainc, _, _, width := r.screen.GetContent(sx, sy)
	if glyph != blank || mainc == ' ' || mainc == 0 {
		r.putGlyph(sx, sy, glyph, style)
		return
	}
	cols := 2
	if width > 1 {
		cols = 1
	}
	for x := sx; x < sx+cols; x++ {
		c, comb, old, _ := r.screen.GetContent(x, sy)
		fg, _, _ := old.Decompose()
		r.screen.SetContent(x, sy, c, comb, style.Foreground(fg))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Fill the second column so tints cover the whole cell.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
