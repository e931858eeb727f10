package render

import "blastradius/internal/grid"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	Offset     grid.Point
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c grid.Point, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that c is in the middle of the view.
// The level follows c.
func (cam *Camera) Center(c grid.Point) {
	cam.Offset = grid.Point{
		X: c.X - (cam.ViewWidth/2)/2,
		Y: c.Y - cam.ViewHeight/2,
		Z: c.Z,
	}
}

// WorldToScreen converts p to screen (sx, sy). visible is false when p is
// outside the viewport or on another level.
func (cam *Camera) WorldToScreen(p grid.Point) (sx, sy int, visible bool) {
	sx = (p.X - cam.Offset.X) * 2
	sy = p.Y - cam.Offset.Y
	visible = p.Z == cam.Offset.Z && sx >= 0 && sx < cam.ViewWidth && sy >= 0 && sy < cam.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a cell on the camera's level.
func (cam *Camera) ScreenToWorld(sx, sy int) grid.Point {
	return grid.Point{X: sx/2 + cam.Offset.X, Y: sy + cam.Offset.Y, Z: cam.Offset.Z}
}
