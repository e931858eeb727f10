package system

import (
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
	"blastradius/internal/shadowcast"
)

// sightGrid presents a map level to the shadowcaster: opaque tiles have
// density 1, everything else 0.
type sightGrid struct {
	gmap *gamemap.GameMap
}

func (g sightGrid) InBounds(p grid.Point) bool { return g.gmap.InBounds(p) }

func (g sightGrid) ObstacleDensity(p grid.Point) float64 {
	if g.gmap.IsTransparent(p) {
		return 0
	}
	return 1
}

// UpdateFOV resets visibility on the viewer's level and lights every tile
// the viewer can see within radius.
func UpdateFOV(w *ecs.World, gmap *gamemap.GameMap, viewer ecs.EntityID, radius int) {
	posComp := w.Get(viewer, component.CPosition)
	if posComp == nil {
		return
	}
	origin := posComp.(component.Position).Point()
	if origin.Z < 0 || origin.Z >= gmap.Depth() {
		return
	}

	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			gmap.At(grid.Point{X: x, Y: y, Z: origin.Z}).Visible = false
		}
	}

	shadowcast.Visible(sightGrid{gmap}, origin, radius, func(p grid.Point) {
		t := gmap.At(p)
		t.Visible = true
		t.Explored = true
	})
}
