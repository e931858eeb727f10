// Package effect is the entry point for area effects: it owns the
// explosion queue, runs each event kind and answers shape queries.
package effect

import (
	"fmt"
	"math/rand"

	"blastradius/internal/blast"
	"blastradius/internal/explosion"
	"blastradius/internal/fragment"
	"blastradius/internal/grid"
	"blastradius/internal/shape"
	"blastradius/internal/wavefront"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

// Config selects and tunes the propagators.
type Config struct {
	Blast blast.Config
	// ObstacleFactor scales fragment impact into terrain bash force.
	ObstacleFactor float64
	// Strict turns programming errors into panics and rejects unknown
	// event kinds on enqueue.
	Strict bool
}

// DefaultConfig is the sorted blast with default fragment handling.
func DefaultConfig() Config {
	return Config{
		Blast:          blast.DefaultConfig(),
		ObstacleFactor: fragment.DefaultObstacleFactor,
	}
}

// Report is the outcome of one regular explosion.
type Report struct {
	Pos      grid.Point
	Blast    world.DamageMap
	Shrapnel world.DamageMap
}

// Total merges blast and shrapnel damage per occupant.
func (r Report) Total() world.DamageMap {
	out := world.DamageMap{}
	out.Merge(r.Blast)
	out.Merge(r.Shrapnel)
	return out
}

// Engine runs area effects against one world.
type Engine struct {
	world  world.World
	cfg    Config
	rng    *rand.Rand
	log    *zap.Logger
	queue  *explosion.Queue
	blast  blast.Propagator
	frag   *fragment.Propagator
	shapes *shape.Builder

	onFrame  blast.FrameHook
	onReport func(Report)
}

// New builds an engine for w.
func New(w world.World, cfg Config, rng *rand.Rand, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		world:  w,
		cfg:    cfg,
		rng:    rng,
		log:    log,
		queue:  explosion.NewQueue(cfg.Strict, log.Named("queue")),
		shapes: shape.New(w, cfg.Blast.Metric),
	}
	e.frag = fragment.New(cfg.Blast.Metric, log.Named("fragment"))
	if cfg.ObstacleFactor > 0 {
		e.frag.ObstacleFactor = cfg.ObstacleFactor
	}
	e.rebuildBlast()

	e.queue.Handle(explosion.KindRegular, e.regular)
	e.queue.Handle(explosion.KindFlashbang, e.flashbang)
	e.queue.Handle(explosion.KindShockwave, e.shockwave)
	e.queue.Handle(explosion.KindResonanceCascade, e.resonanceCascade)
	return e
}

func (e *Engine) rebuildBlast() {
	bc := e.cfg.Blast
	bc.Strict = bc.Strict || e.cfg.Strict
	e.blast = blast.New(bc, e.rng, e.log.Named("blast"), e.onFrame)
}

// OnFrame installs a hook that sees each blast advance.
func (e *Engine) OnFrame(h blast.FrameHook) {
	e.onFrame = h
	e.rebuildBlast()
}

// OnShape installs a hook that sees every computed target set.
func (e *Engine) OnShape(h shape.DrawHook) { e.shapes.Draw = h }

// OnReport installs a hook called after every regular explosion that had
// an effect.
func (e *Engine) OnReport(fn func(Report)) { e.onReport = fn }

// Variant is the blast strategy in use.
func (e *Engine) Variant() blast.Variant { return e.blast.Variant() }

// SetVariant switches blast strategy.
func (e *Engine) SetVariant(v blast.Variant) {
	e.cfg.Blast.Variant = v
	e.rebuildBlast()
}

// Pending is the number of queued events.
func (e *Engine) Pending() int { return e.queue.Len() }

func (e *Engine) enqueue(ev explosion.Event) error {
	if err := e.queue.Add(ev); err != nil {
		return fmt.Errorf("enqueue %s: %w", ev.Kind, err)
	}
	return nil
}

// EnqueueExplosion queues a regular explosion at pos.
func (e *Engine) EnqueueExplosion(pos grid.Point, d explosion.Descriptor, source world.OccupantID) error {
	return e.enqueue(explosion.Event{Pos: pos, Kind: explosion.KindRegular, Explosion: d, Source: source})
}

// EnqueueFlashbang queues a flashbang at pos.
func (e *Engine) EnqueueFlashbang(pos grid.Point, data explosion.FlashbangData, source world.OccupantID) error {
	return e.enqueue(explosion.Event{Pos: pos, Kind: explosion.KindFlashbang, Flashbang: data, Source: source})
}

// EnqueueShockwave queues a shockwave at pos.
func (e *Engine) EnqueueShockwave(pos grid.Point, data explosion.ShockwaveData, source world.OccupantID) error {
	return e.enqueue(explosion.Event{Pos: pos, Kind: explosion.KindShockwave, Shockwave: data, Source: source})
}

// EnqueueResonanceCascade queues a resonance cascade at pos.
func (e *Engine) EnqueueResonanceCascade(pos grid.Point, source world.OccupantID) error {
	return e.enqueue(explosion.Event{Pos: pos, Kind: explosion.KindResonanceCascade, Source: source})
}

// Drain runs every queued event, including those queued along the way.
func (e *Engine) Drain() { e.queue.Execute() }

// Explode runs a regular explosion immediately: shrapnel first, then the
// blast. Invalid descriptors do nothing.
func (e *Engine) Explode(pos grid.Point, d explosion.Descriptor) Report {
	r := Report{Pos: pos, Blast: world.DamageMap{}, Shrapnel: world.DamageMap{}}
	if !d.Valid() {
		return r
	}
	if d.Fragment != nil {
		r.Shrapnel = e.Shrapnel(pos, *d.Fragment)
	}
	if d.Damage > 0 {
		r.Blast = e.blast.Propagate(e.world, pos, blast.Params{Force: d.Damage, Radius: d.Radius, Fire: d.Fire})
	}
	e.log.Debug("explosion",
		zap.Stringer("pos", pos),
		zap.Float64("damage", d.Damage),
		zap.Float64("radius", d.Radius),
		zap.Bool("fire", d.Fire),
		zap.Int("blasted", len(r.Blast)),
		zap.Int("shredded", len(r.Shrapnel)))
	if e.onReport != nil {
		e.onReport(r)
	}
	return r
}

// Shrapnel bursts a fragment cloud at source.
func (e *Engine) Shrapnel(source grid.Point, proj world.Projectile) world.DamageMap {
	if proj.Range < 0 && e.cfg.Strict {
		panic(fmt.Sprintf("effect: shrapnel with negative range %d at %v", proj.Range, source))
	}
	return e.frag.Propagate(e.world, source, proj)
}

// BlastTargets is the disc of radius cells around epicenter.
func (e *Engine) BlastTargets(epicenter grid.Point, radius int, ignoreWalls bool) shape.TargetSet {
	return e.shapes.Blast(epicenter, radius, ignoreWalls)
}

// ConeTargets is a cone widthDeg wide from source toward target.
func (e *Engine) ConeTargets(source, target grid.Point, widthDeg float64, rng int, ignoreWalls bool) shape.TargetSet {
	return e.shapes.Cone(source, target, widthDeg, rng, ignoreWalls)
}

// LineTargets is a line width cells thick from source toward target.
func (e *Engine) LineTargets(source, target grid.Point, width int, ignoreWalls bool) shape.TargetSet {
	return e.shapes.Line(source, target, width, ignoreWalls)
}

// PushPull shoves what lies within radius of center outward (push) or
// draws it inward.
func (e *Engine) PushPull(center grid.Point, radius int, push, creatures, items, fields bool) int {
	return e.PushPullWith(center, radius, push, wavefront.MoveOptions{
		Creatures: creatures,
		Items:     items,
		Fields:    fields,
	})
}

// PushPullWith is PushPull with full control over what moves.
func (e *Engine) PushPullWith(center grid.Point, radius int, push bool, opts wavefront.MoveOptions) int {
	if radius < 0 {
		if e.cfg.Strict {
			panic(fmt.Sprintf("effect: push/pull with negative radius %d at %v", radius, center))
		}
		e.log.Warn("push/pull with negative radius ignored", zap.Stringer("center", center), zap.Int("radius", radius))
		return 0
	}
	return wavefront.ApplyPushPull(e.world, center, radius, push, opts)
}
