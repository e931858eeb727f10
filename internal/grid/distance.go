package grid

import (
	"fmt"
	"math"
)

// Metric selects how distances between cells are measured.
type Metric uint8

const (
	Euclidean Metric = iota // round areas, diagonal steps cost √2
	Chebyshev               // square areas, every step costs 1
)

// ParseMetric maps a configuration string to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "euclidean", "trig", "":
		return Euclidean, nil
	case "chebyshev", "square":
		return Chebyshev, nil
	}
	return Euclidean, fmt.Errorf("unknown distance metric %q", s)
}

func (m Metric) String() string {
	if m == Chebyshev {
		return "chebyshev"
	}
	return "euclidean"
}

// TrigDist is the straight-line distance between a and b.
func TrigDist(a, b Point) float64 {
	d := a.Sub(b)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z))
}

// SquareDist is the Chebyshev distance between a and b.
func SquareDist(a, b Point) int {
	d := a.Sub(b).Abs()
	return max(d.X, d.Y, d.Z)
}

// Dist measures a to b with the metric.
func (m Metric) Dist(a, b Point) float64 {
	if m == Chebyshev {
		return float64(SquareDist(a, b))
	}
	return TrigDist(a, b)
}

// RLDist is the truncated integer distance used for range checks.
func (m Metric) RLDist(a, b Point) int {
	return int(m.Dist(a, b))
}

// StepCost is the cost of a single planar step by d.
func (m Metric) StepCost(d Point) float64 {
	if m == Euclidean && d.X != 0 && d.Y != 0 {
		return math.Sqrt2
	}
	return 1
}
