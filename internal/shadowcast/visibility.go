package shadowcast

import "blastradius/internal/grid"

// Visibility carries plain light: any density of 1 or more is opaque and
// every lit cell gets 1.
type Visibility struct{}

func (Visibility) Calc(numerator, _ float64, _ int) float64 { return numerator }

func (Visibility) Check(obstacle, _ float64) bool { return obstacle < 1 }

func (Visibility) Update(current, incoming float64) float64 { return max(current, incoming) }

func (Visibility) Accumulate(cumulative, _ float64, _ int) float64 { return cumulative }

// Visible runs a light cast from origin and reports every lit cell inside
// the radius circle, origin included.
func Visible(in Grid, origin grid.Point, radius int, fn func(p grid.Point)) {
	if in.InBounds(origin) {
		fn(origin)
	}
	field := Cast(in, origin, radius, 1, Visibility{})
	r2 := radius * radius
	field.Each(func(p grid.Point, _ float64) {
		dx, dy := p.X-origin.X, p.Y-origin.Y
		if dx*dx+dy*dy < r2 {
			fn(p)
		}
	})
}
