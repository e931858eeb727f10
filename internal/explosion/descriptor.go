// Package explosion holds the descriptors of area-effect events and the
// queue that runs them one after another.
package explosion

import (
	"errors"
	"fmt"
	"math"

	"blastradius/internal/world"
)

// ErrBadFactor is returned for a legacy distance factor outside (0, 1).
var ErrBadFactor = errors.New("explosion: distance factor must be in (0, 1)")

// Descriptor is what a regular explosion does: a blast of Damage peak force
// out to Radius, optional fire, and an optional cloud of fragments.
type Descriptor struct {
	Damage   float64
	Radius   float64
	Fire     bool
	Fragment *world.Projectile
}

// Valid reports whether the explosion would do anything at all.
func (d Descriptor) Valid() bool {
	return d.Damage > 0 || d.Fragment != nil
}

// SafeRange is the first distance at which nothing reaches.
func (d Descriptor) SafeRange() int {
	r := d.Radius
	if d.Fragment != nil {
		r = max(r, float64(d.Fragment.Range))
	}
	return int(r) + 1
}

// FromLegacy converts an old power/distance-factor pair, where factor is
// the share of force that survives each cell. A casing adds fragments that
// fly twice as far as the blast reaches.
func FromLegacy(power, factor float64, casing bool) (Descriptor, error) {
	if factor <= 0 || factor >= 1 {
		return Descriptor{}, fmt.Errorf("legacy explosion power %.1f factor %.3f: %w", power, factor, ErrBadFactor)
	}
	damage := power * 2 / 15
	d := Descriptor{
		Damage: damage,
		Radius: math.Pow(damage, 0.25) * math.Log(0.75) / math.Log(factor),
	}
	if casing {
		d.Fragment = &world.Projectile{
			Range:  int(2 * d.Radius),
			Impact: world.Cut(damage, 3),
		}
	}
	return d, nil
}
