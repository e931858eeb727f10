package grid

import "math"

// Angle returns the direction from a to b in radians, normalised to [0, 2π).
func Angle(a, b Point) float64 {
	r := math.Atan2(float64(b.Y-a.Y), float64(b.X-a.X))
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// Radians converts degrees.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// RayEnd is the cell reached by travelling rng cells from p at angle.
// Under Chebyshev the ray is projected onto the edge of the square of
// radius rng, so every ray has the same Chebyshev length.
func (m Metric) RayEnd(angle float64, rng int, p Point) Point {
	r := float64(rng)
	if m == Euclidean {
		return Point{
			X: p.X + int(math.Round(r*math.Cos(angle))),
			Y: p.Y + int(math.Round(r*math.Sin(angle))),
			Z: p.Z,
		}
	}
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	deg := a * 180 / math.Pi
	mult := 1.0
	if deg >= 135 && deg <= 315 {
		mult = -1
	}
	if deg <= 45 || (deg >= 135 && deg <= 225) || deg > 315 {
		return Point{
			X: p.X + int(math.Round(r*mult)),
			Y: p.Y + int(math.Round(r*math.Tan(a)*mult)),
			Z: p.Z,
		}
	}
	return Point{
		X: p.X + int(math.Round(r/math.Tan(a)*mult)),
		Y: p.Y + int(math.Round(r*mult)),
		Z: p.Z,
	}
}
