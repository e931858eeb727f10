package arena

import (
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/grid"
	"blastradius/internal/system"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

var humanoidParts = []world.BodyPart{world.Torso, world.Head, world.LegL, world.LegR, world.ArmL, world.ArmR}

var statusEffects = map[world.Status]component.EffectKind{
	world.StatusStunned:  component.EffectStunned,
	world.StatusBlind:    component.EffectBlind,
	world.StatusDeaf:     component.EffectDeaf,
	world.StatusTeleglow: component.EffectTeleglow,
}

// creature is the world.Occupant view of an entity.
type creature struct {
	a  *Arena
	id ecs.EntityID
}

func (c *creature) ID() world.OccupantID { return world.OccupantID(c.id) }

func (c *creature) Pos() grid.Point {
	if pc := c.a.ECS.Get(c.id, component.CPosition); pc != nil {
		return pc.(component.Position).Point()
	}
	return grid.Point{}
}

func (c *creature) Name() string {
	if rc := c.a.ECS.Get(c.id, component.CRenderable); rc != nil {
		return rc.(component.Renderable).Name
	}
	return "something"
}

func (c *creature) body() component.Body {
	if bc := c.a.ECS.Get(c.id, component.CBody); bc != nil {
		return bc.(component.Body)
	}
	return component.Body{Size: world.SizeMedium, WeightGrams: 50000}
}

func (c *creature) Humanoid() bool   { return c.body().Humanoid }
func (c *creature) Player() bool     { return c.a.ECS.Has(c.id, component.CTagPlayer) }
func (c *creature) Dead() bool       { return system.Dead(c.a.ECS, c.id) }
func (c *creature) Size() world.Size { return c.body().Size }
func (c *creature) WeightGrams() int { return c.body().WeightGrams }

func (c *creature) BodyParts() []world.BodyPart {
	if c.Humanoid() {
		return humanoidParts
	}
	return humanoidParts[:1]
}

func (c *creature) BashArmor(world.BodyPart) float64 {
	if ac := c.a.ECS.Get(c.id, component.CArmor); ac != nil {
		return ac.(component.Armor).Bash
	}
	return 0
}

func (c *creature) Senses() world.Senses {
	if sc := c.a.ECS.Get(c.id, component.CSenses); sc != nil {
		s := sc.(component.Senses)
		return world.Senses{Sees: s.Sees, Hears: s.Hears, Electronic: s.Electronic}
	}
	return world.Senses{}
}

func (c *creature) DealDamage(part world.BodyPart, d world.DamageInstance) int {
	name := c.Name()
	r := system.DealDamage(c.a.ECS, c.id, d)
	c.report(name, part, r)
	return r.Damage
}

func (c *creature) ApplyDamage(part world.BodyPart, amount int) {
	name := c.Name()
	c.report(name, part, system.ApplyDamage(c.a.ECS, c.id, amount))
}

func (c *creature) report(name string, part world.BodyPart, r system.DamageResult) {
	if r.Damage <= 0 {
		return
	}
	c.a.log.Debug("occupant damaged",
		zap.String("name", name),
		zap.Stringer("part", part),
		zap.Int("damage", r.Damage),
		zap.Bool("killed", r.Killed))
	if r.Killed {
		c.a.dirty = true
		c.a.Say("The %s dies!", name)
	}
}

func (c *creature) KnockBackTo(p grid.Point) {
	if system.MoveTo(c.a.ECS, c.a.Map, c.id, p) == system.MoveOK {
		c.a.dirty = true
	}
}

func (c *creature) Knockback(source grid.Point, force, stun, damMult int) {
	name := c.Name()
	res := system.Knockback(c.a.ECS, c.a.Map, c.id, source, force, stun, damMult)
	if res.Cells > 0 || res.Killed {
		c.a.dirty = true
	}
	if res.Impact > 0 {
		c.a.Say("The %s slams into an obstacle!", name)
	}
	if res.Killed {
		c.a.Say("The %s dies!", name)
	}
}

func (c *creature) ApplyStatus(s world.Status, turns int) {
	kind, ok := statusEffects[s]
	if !ok {
		return
	}
	system.ApplyEffect(c.a.ECS, c.id, component.ActiveEffect{Kind: kind, TurnsRemaining: turns})
}
