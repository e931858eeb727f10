package explosion

import (
	"errors"
	"math"
	"testing"

	"blastradius/internal/world"
)

func TestDescriptorValid(t *testing.T) {
	cases := []struct {
		name string
		d    Descriptor
		want bool
	}{
		{"empty", Descriptor{}, false},
		{"radius only", Descriptor{Radius: 5}, false},
		{"damage", Descriptor{Damage: 1}, true},
		{"fragments only", Descriptor{Fragment: &world.Projectile{Range: 3}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Valid(); got != tc.want {
				t.Errorf("Valid() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestSafeRange(t *testing.T) {
	if got := (Descriptor{Radius: 4.5}).SafeRange(); got != 5 {
		t.Errorf("SafeRange = %d; want 5", got)
	}
	d := Descriptor{Radius: 3, Fragment: &world.Projectile{Range: 12}}
	if got := d.SafeRange(); got != 13 {
		t.Errorf("SafeRange with fragments = %d; want 13", got)
	}
}

func TestFromLegacy(t *testing.T) {
	d, err := FromLegacy(150, 0.75, true)
	if err != nil {
		t.Fatal(err)
	}
	if d.Damage != 20 {
		t.Errorf("Damage = %v; want 20", d.Damage)
	}
	// ln(0.75)/ln(0.75) = 1, so the radius is the fourth root of the damage.
	if want := math.Pow(20, 0.25); math.Abs(d.Radius-want) > 1e-9 {
		t.Errorf("Radius = %v; want %v", d.Radius, want)
	}
	if d.Fragment == nil || d.Fragment.Range != int(2*d.Radius) {
		t.Fatalf("unexpected fragment %+v", d.Fragment)
	}
	if u := d.Fragment.Impact.Units[0]; u.Type != world.DamageCut || u.Amount != 20 || u.ArmorMult != 3 {
		t.Errorf("unexpected impact %+v", u)
	}

	if d, _ := FromLegacy(150, 0.75, false); d.Fragment != nil {
		t.Error("no casing, no fragments")
	}
	for _, f := range []float64{0, 1, -0.5, 1.5} {
		if _, err := FromLegacy(100, f, false); !errors.Is(err, ErrBadFactor) {
			t.Errorf("factor %v: err = %v; want ErrBadFactor", f, err)
		}
	}
}
