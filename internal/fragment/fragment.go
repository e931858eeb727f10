// Package fragment spreads shrapnel from a burst point with a decaying
// shadowcast and applies the resulting hits.
package fragment

import (
	"blastradius/internal/grid"
	"blastradius/internal/shadowcast"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

// DefaultObstacleFactor scales fragment impact into terrain bash force.
const DefaultObstacleFactor = 0.01

// Ops is the fragment cloud: intensity is what is left of the numerator
// after punching through the accumulated obstacle density.
type Ops struct{}

func (Ops) Calc(numerator, cumulative float64, _ int) float64 {
	return numerator - cumulative
}

func (Ops) Check(obstacle, lastIntensity float64) bool {
	return lastIntensity-obstacle > 0
}

func (Ops) Update(current, incoming float64) float64 {
	return max(current, incoming)
}

func (Ops) Accumulate(cumulative, current float64, _ int) float64 {
	return max(cumulative, current) + 1
}

// Cloud casts the fragment field for a burst at source reaching rng cells.
// The source cell is seeded so anything standing on it can still be hit.
func Cloud(t world.Terrain, source grid.Point, rng int) *shadowcast.Field {
	n := rng + 1
	f := shadowcast.Cast(t, source, n, float64(n), Ops{})
	f.Set(source, 1.0)
	return f
}

// Propagator applies shrapnel bursts.
type Propagator struct {
	Metric         grid.Metric
	ObstacleFactor float64
	Log            *zap.Logger
}

// New returns a propagator with the default obstacle factor.
func New(metric grid.Metric, log *zap.Logger) *Propagator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Propagator{Metric: metric, ObstacleFactor: DefaultObstacleFactor, Log: log}
}

// Propagate bursts proj at source and returns the damage dealt per occupant.
func (fp *Propagator) Propagate(w world.World, source grid.Point, proj world.Projectile) world.DamageMap {
	dealt := world.DamageMap{}
	if proj.Range < 0 {
		fp.Log.Warn("shrapnel with negative range ignored",
			zap.Stringer("source", source), zap.Int("range", proj.Range))
		return dealt
	}

	cloud := Cloud(w, source, proj.Range)
	cloud.Each(func(p grid.Point, intensity float64) {
		if intensity <= 0 || fp.Metric.RLDist(source, p) > proj.Range {
			return
		}
		if occ, ok := w.OccupantAt(p); ok && !occ.Dead() {
			if n := hit(occ, proj.Impact); n > 0 {
				dealt[occ.ID()] += n
			}
		}
		if w.Impassable(p) || w.HasVehicle(p) {
			force := proj.Impact.Total() * fp.ObstacleFactor
			if w.HasVehicle(p) {
				w.DamageVehicle(p, force)
			} else {
				w.Bash(p, force, false)
			}
		}
	})

	fp.Log.Debug("shrapnel burst",
		zap.Stringer("source", source),
		zap.Int("range", proj.Range),
		zap.Int("victims", len(dealt)))
	return dealt
}

// hit delivers impact to one occupant. Humanoids spread half of it over
// each body part.
func hit(occ world.Occupant, impact world.DamageInstance) int {
	if !occ.Humanoid() {
		return occ.DealDamage(world.Torso, impact)
	}
	half := impact.Scaled(0.5)
	total := 0
	for _, part := range occ.BodyParts() {
		total += occ.DealDamage(part, half)
		if occ.Dead() {
			break
		}
	}
	return total
}
