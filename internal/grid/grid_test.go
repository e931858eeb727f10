package grid

import (
	"math"
	"testing"
)

func TestLineExcludesStartIncludesEnd(t *testing.T) {
	cases := []struct {
		name string
		a, b Point
	}{
		{"horizontal", P(0, 0), P(5, 0)},
		{"vertical", P(2, 2), P(2, -3)},
		{"diagonal", P(0, 0), P(4, 4)},
		{"shallow", P(0, 0), P(7, 2)},
		{"steep", P(1, 1), P(-2, 9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := Line(tc.a, tc.b)
			if len(path) == 0 {
				t.Fatal("expected a non-empty path")
			}
			if path[0] == tc.a {
				t.Error("path must not include the start point")
			}
			if path[len(path)-1] != tc.b {
				t.Errorf("last point = %v, want %v", path[len(path)-1], tc.b)
			}
			want := SquareDist(tc.a, tc.b)
			if len(path) != want {
				t.Errorf("len(path) = %d, want %d", len(path), want)
			}
			prev := tc.a
			for _, p := range path {
				if SquareDist(prev, p) != 1 {
					t.Fatalf("path is not contiguous between %v and %v", prev, p)
				}
				prev = p
			}
		})
	}
}

func TestLineSamePointIsEmpty(t *testing.T) {
	if got := Line(P(3, 3), P(3, 3)); len(got) != 0 {
		t.Errorf("expected empty path, got %v", got)
	}
}

func TestLineVertical(t *testing.T) {
	path := Line(Point{1, 1, 0}, Point{1, 1, 2})
	want := []Point{{1, 1, 1}, {1, 1, 2}}
	if len(path) != len(want) {
		t.Fatalf("got %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestLineInterpolatesLevels(t *testing.T) {
	path := Line(Point{0, 0, 0}, Point{4, 0, 2})
	if path[len(path)-1].Z != 2 {
		t.Errorf("end level = %d, want 2", path[len(path)-1].Z)
	}
	for i := 1; i < len(path); i++ {
		if path[i].Z < path[i-1].Z {
			t.Errorf("levels must not decrease along the path: %v", path)
		}
	}
}

func TestDistances(t *testing.T) {
	a, b := P(0, 0), P(3, 4)
	if got := TrigDist(a, b); got != 5 {
		t.Errorf("TrigDist = %v, want 5", got)
	}
	if got := SquareDist(a, b); got != 4 {
		t.Errorf("SquareDist = %d, want 4", got)
	}
	if got := Euclidean.RLDist(P(0, 0), P(2, 2)); got != 2 {
		t.Errorf("Euclidean.RLDist = %d, want 2", got)
	}
	if got := Chebyshev.RLDist(P(0, 0), P(2, 2)); got != 2 {
		t.Errorf("Chebyshev.RLDist = %d, want 2", got)
	}
	if got := Euclidean.StepCost(P(1, 1)); got != math.Sqrt2 {
		t.Errorf("diagonal step = %v, want √2", got)
	}
	if got := Chebyshev.StepCost(P(1, 1)); got != 1 {
		t.Errorf("chebyshev diagonal step = %v, want 1", got)
	}
}

func TestAngleNormalised(t *testing.T) {
	cases := []struct {
		b    Point
		want float64
	}{
		{P(1, 0), 0},
		{P(0, 1), math.Pi / 2},
		{P(-1, 0), math.Pi},
		{P(0, -1), 3 * math.Pi / 2},
	}
	for _, c := range cases {
		if got := Angle(P(0, 0), c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Angle to %v = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestRayEnd(t *testing.T) {
	if got := Euclidean.RayEnd(0, 6, P(0, 0)); got != P(6, 0) {
		t.Errorf("east ray = %v, want (6,0)", got)
	}
	if got := Euclidean.RayEnd(math.Pi/2, 3, P(1, 1)); got != P(1, 4) {
		t.Errorf("south ray = %v, want (1,4)", got)
	}
	// Chebyshev rays all end on the square edge.
	for deg := 0.0; deg < 360; deg += 7.5 {
		end := Chebyshev.RayEnd(Radians(deg), 5, P(0, 0))
		if d := SquareDist(P(0, 0), end); d != 5 {
			t.Errorf("chebyshev ray at %v° ends at %v (distance %d)", deg, end, d)
		}
	}
}

func TestParseMetric(t *testing.T) {
	if m, err := ParseMetric("chebyshev"); err != nil || m != Chebyshev {
		t.Errorf("ParseMetric(chebyshev) = %v, %v", m, err)
	}
	if _, err := ParseMetric("manhattan"); err == nil {
		t.Error("expected an error for an unknown metric")
	}
}
