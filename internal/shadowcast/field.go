package shadowcast

import "blastradius/internal/grid"

// Field holds one float per cell of the square around a cast's origin.
// Cells outside the square read as zero.
type Field struct {
	origin grid.Point
	radius int
	side   int
	cells  []float64
}

// NewField allocates a zeroed field covering origin ± radius.
func NewField(origin grid.Point, radius int) *Field {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	return &Field{origin: origin, radius: radius, side: side, cells: make([]float64, side*side)}
}

func (f *Field) index(p grid.Point) (int, bool) {
	if p.Z != f.origin.Z {
		return 0, false
	}
	x := p.X - f.origin.X + f.radius
	y := p.Y - f.origin.Y + f.radius
	if x < 0 || y < 0 || x >= f.side || y >= f.side {
		return 0, false
	}
	return y*f.side + x, true
}

// At returns the value stored for p.
func (f *Field) At(p grid.Point) float64 {
	if i, ok := f.index(p); ok {
		return f.cells[i]
	}
	return 0
}

// Set overwrites the value for p. Points outside the field are ignored.
func (f *Field) Set(p grid.Point, v float64) {
	if i, ok := f.index(p); ok {
		f.cells[i] = v
	}
}

func (f *Field) merge(p grid.Point, v float64, ops Ops) {
	if i, ok := f.index(p); ok {
		f.cells[i] = ops.Update(f.cells[i], v)
	}
}

// Each calls fn for every cell with a positive value, row by row.
func (f *Field) Each(fn func(p grid.Point, v float64)) {
	for i, v := range f.cells {
		if v <= 0 {
			continue
		}
		fn(grid.Point{
			X: f.origin.X - f.radius + i%f.side,
			Y: f.origin.Y - f.radius + i/f.side,
			Z: f.origin.Z,
		}, v)
	}
}
