package effect

import (
	"blastradius/internal/explosion"
	"blastradius/internal/grid"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

const (
	flashRange   = 8
	flashStun    = 4
	cascadeReach = 8
	// Teleglow needs 100-5*d > 0.
	teleglowReach = 20
)

// roll is inclusive on both ends.
func (e *Engine) roll(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return e.rng.Intn(hi-lo+1) + lo
}

func (e *Engine) oneIn(n int) bool { return n <= 1 || e.rng.Intn(n) == 0 }

// occupantsWithin collects the living occupants on center's level within
// r cells, in row order. Collecting first keeps a handler from meeting the
// same occupant twice after moving it.
func (e *Engine) occupantsWithin(center grid.Point, r int) []world.Occupant {
	var out []world.Occupant
	for y := center.Y - r; y <= center.Y+r; y++ {
		for x := center.X - r; x <= center.X+r; x++ {
			p := grid.Point{X: x, Y: y, Z: center.Z}
			if !e.world.InBounds(p) || e.cfg.Blast.Metric.RLDist(center, p) > r {
				continue
			}
			if occ, ok := e.world.OccupantAt(p); ok && !occ.Dead() {
				out = append(out, occ)
			}
		}
	}
	return out
}

func (e *Engine) regular(ev explosion.Event) {
	if !ev.Explosion.Valid() {
		e.log.Debug("explosion without blast or fragments", zap.Stringer("pos", ev.Pos))
		return
	}
	e.Explode(ev.Pos, ev.Explosion)
}

func (e *Engine) flashbang(ev explosion.Event) {
	p := ev.Pos
	for _, occ := range e.occupantsWithin(p, flashRange) {
		d := e.cfg.Blast.Metric.RLDist(occ.Pos(), p)
		if occ.Player() {
			if ev.Flashbang.PlayerImmune {
				continue
			}
			occ.ApplyStatus(world.StatusDeaf, 40-4*d)
			if e.world.LineOfSight(occ.Pos(), p, flashRange) {
				occ.ApplyStatus(world.StatusBlind, 10-d)
			}
			continue
		}
		senses := occ.Senses()
		if senses.Electronic {
			continue
		}
		if d <= flashStun {
			occ.ApplyStatus(world.StatusStunned, 10-d)
		}
		if senses.Sees && e.world.LineOfSight(occ.Pos(), p, flashRange) {
			occ.ApplyStatus(world.StatusBlind, 18-d)
		}
		if senses.Hears {
			occ.ApplyStatus(world.StatusDeaf, 60-4*d)
		}
	}
	e.log.Debug("flashbang", zap.Stringer("pos", p), zap.Bool("player_immune", ev.Flashbang.PlayerImmune))
}

func (e *Engine) shockwave(ev explosion.Event) {
	sw := ev.Shockwave
	if sw.Radius < 0 {
		e.log.Warn("shockwave with negative radius ignored", zap.Stringer("pos", ev.Pos), zap.Int("radius", sw.Radius))
		return
	}
	caught := 0
	for _, occ := range e.occupantsWithin(ev.Pos, sw.Radius) {
		if occ.Player() && !sw.AffectsPlayer {
			continue
		}
		occ.Knockback(ev.Pos, sw.Force, sw.Stun, sw.DamageMultiplier)
		caught++
	}
	e.log.Debug("shockwave",
		zap.Stringer("pos", ev.Pos),
		zap.Int("radius", sw.Radius),
		zap.Int("force", sw.Force),
		zap.Int("caught", caught))
}

var cascadeFields = [...]world.FieldType{
	world.FieldBlood,
	world.FieldBile,
	world.FieldSlime,
	world.FieldSlime,
	world.FieldFire,
	world.FieldNukeGas,
	world.FieldNukeGas,
}

func (e *Engine) resonanceCascade(ev explosion.Event) {
	p := ev.Pos
	e.teleglow(p)

	anomalies, _ := e.world.(world.Anomalies)
	for x := p.X - cascadeReach; x < p.X+cascadeReach; x++ {
		for y := p.Y - cascadeReach; y < p.Y+cascadeReach; y++ {
			dest := grid.Point{X: x, Y: y, Z: p.Z}
			if !e.world.InBounds(dest) {
				continue
			}
			switch n := e.roll(0, 80); {
			case n >= 1 && n <= 2:
				if anomalies != nil {
					anomalies.EMP(dest)
				}
			case n >= 3 && n <= 5:
				e.splatter(dest)
			case n >= 6 && n <= 10:
				if anomalies != nil {
					anomalies.SetTrap(dest, world.TrapPortal)
				}
			case n >= 11 && n <= 12:
				if anomalies != nil {
					anomalies.SetTrap(dest, world.TrapGoo)
				}
			case n >= 13 && n <= 15:
				if anomalies != nil {
					anomalies.SpawnAnomaly(dest)
				}
			case n >= 16 && n <= 18:
				if anomalies != nil {
					anomalies.Destroy(dest)
				}
			case n == 19:
				d := explosion.Descriptor{Damage: float64(e.roll(1, 10)), Radius: 1, Fire: e.oneIn(4)}
				if err := e.EnqueueExplosion(dest, d, ev.Source); err != nil {
					e.log.Error("cascade explosion", zap.Error(err))
				}
			}
		}
	}
	e.log.Debug("resonance cascade", zap.Stringer("pos", p), zap.Bool("anomalies", anomalies != nil))
}

// splatter fills most of the 3x3 block around p with random fields.
func (e *Engine) splatter(p grid.Point) {
	for x := p.X - 1; x <= p.X+1; x++ {
		for y := p.Y - 1; y <= p.Y+1; y++ {
			f := cascadeFields[e.roll(0, len(cascadeFields)-1)]
			at := grid.Point{X: x, Y: y, Z: p.Z}
			if !e.oneIn(3) && e.world.InBounds(at) {
				e.world.AddField(at, f, 3)
			}
		}
	}
}

// teleglow marks a nearby player with a glow that lasts longer the closer
// they stood.
func (e *Engine) teleglow(p grid.Point) {
	for _, occ := range e.occupantsWithin(p, teleglowReach) {
		if !occ.Player() {
			continue
		}
		d := int(grid.TrigDist(p, occ.Pos()))
		hi := 100 - 5*d
		if hi <= 0 {
			continue
		}
		lo := max(0, 60-5*d)
		occ.ApplyStatus(world.StatusTeleglow, e.roll(lo, hi))
	}
}
