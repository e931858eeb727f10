// Package sandbox is an interactive terminal playground for the area
// effects: a cursor, a handful of keys that fire each effect at it, and an
// animated view of the blasts.
package sandbox

import (
	"fmt"
	"math/rand"
	"time"

	"blastradius/assets"
	"blastradius/internal/arena"
	"blastradius/internal/blast"
	"blastradius/internal/component"
	"blastradius/internal/config"
	"blastradius/internal/ecs"
	"blastradius/internal/effect"
	"blastradius/internal/explosion"
	"blastradius/internal/gamemap"
	"blastradius/internal/generate"
	"blastradius/internal/grid"
	"blastradius/internal/render"
	"blastradius/internal/scenario"
	"blastradius/internal/shape"
	"blastradius/internal/world"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	viewRadius   = 30
	shapeRadius  = 3
	coneWidth    = 60
	coneRange    = 8
	pushRadius   = 4
	grenadePower = 240
	grenadeDecay = 0.8
)

var (
	bigBang   = explosion.Descriptor{Damage: 40, Radius: 5, Fire: true}
	thumper   = explosion.ShockwaveData{Radius: 3, Force: 4, Stun: 2, DamageMultiplier: 3}
	flashSafe = explosion.FlashbangData{}
)

// Sandbox owns one arena, one engine and the screen they are drawn on.
type Sandbox struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      *config.Config
	log      *zap.Logger
	rng      *rand.Rand

	arena   *arena.Arena
	engine  *effect.Engine
	cursor  grid.Point
	frames  []blast.Frame
	targets shape.TargetSet
}

// New builds a sandbox on screen. The screen must already be initialised.
func New(screen tcell.Screen, cfg *config.Config, log *zap.Logger) (*Sandbox, error) {
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Sandbox.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Sandbox{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	log.Info("sandbox ready",
		zap.Int64("seed", seed),
		zap.Int("width", s.arena.Map.Width),
		zap.Int("height", s.arena.Map.Height),
		zap.Stringer("variant", s.engine.Variant()))
	return s, nil
}

// reset rebuilds the arena and engine from configuration.
func (s *Sandbox) reset() error {
	ec, err := s.cfg.Effect()
	if err != nil {
		return err
	}
	a, err := s.buildArena()
	if err != nil {
		return err
	}
	// Everything starts explored so the whole arena is drawn.
	for y := 0; y < a.Map.Height; y++ {
		for x := 0; x < a.Map.Width; x++ {
			a.Map.At(grid.P(x, y)).Explored = true
		}
	}

	e := effect.New(a, ec, s.rng, s.log.Named("engine"))
	e.OnFrame(func(f blast.Frame) {
		cells := make(map[grid.Point]float64, len(f.Cells))
		for p, v := range f.Cells {
			cells[p] = v
		}
		f.Cells = cells
		s.frames = append(s.frames, f)
	})
	e.OnShape(func(_ shape.Kind, ts shape.TargetSet) { s.targets = ts })
	e.OnReport(func(r effect.Report) {
		total := r.Total()
		a.Say("Explosion at %v hurts %d for %d damage.", r.Pos, len(total), total.Total())
	})

	s.arena, s.engine = a, e
	s.cursor = grid.P(a.Map.Width/2, a.Map.Height/2)
	if a.Player != ecs.NilEntity {
		s.cursor = s.playerPos()
	}
	a.UpdateFOV(viewRadius)
	return nil
}

func (s *Sandbox) buildArena() (*arena.Arena, error) {
	if path := s.cfg.Sandbox.Scenario; path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		return sc.Build(s.rng, s.log.Named("arena"))
	}
	w, h := s.cfg.Sandbox.Width, s.cfg.Sandbox.Height
	if s.cfg.Sandbox.Layout == config.LayoutRooms {
		return roomsArena(w, h, s.rng, s.log.Named("arena"))
	}
	return defaultArena(w, h, s.rng, s.log.Named("arena"))
}

// roomsArena is a procedurally generated level of rooms and corridors.
func roomsArena(w, h int, rng *rand.Rand, log *zap.Logger) (*arena.Arena, error) {
	gc := generate.DefaultConfig(w, h, rng)
	l := generate.Rooms(gc)
	a := arena.New(l.Map, rng, log)
	if _, err := a.SpawnPlayer(l.Start); err != nil {
		return nil, fmt.Errorf("rooms arena: %w", err)
	}
	pop := generate.Populate(l, gc)
	for _, sp := range pop.Creatures {
		def, ok := assets.Creature(sp.ID)
		if !ok {
			continue
		}
		if _, err := a.Spawn(def, sp.Pos); err != nil {
			log.Debug("generated spawn skipped", zap.String("creature", sp.ID), zap.Error(err))
		}
	}
	for _, sp := range pop.Items {
		if def, ok := assets.Item(sp.ID); ok {
			a.DropItem(def, sp.Pos)
		}
	}
	log.Debug("generated arena", zap.Int("rooms", len(l.Rooms)), zap.Int("creatures", len(pop.Creatures)))
	return a, nil
}

// defaultArena is an open yard with a small hut, a parked car and a few
// creatures to try things on.
func defaultArena(w, h int, rng *rand.Rand, log *zap.Logger) (*arena.Arena, error) {
	a := arena.Open(w, h, rng, log)
	hut := gamemap.Rect{X1: w / 2, Y1: 2, X2: min(w/2+8, w-3), Y2: min(8, h-3)}
	for y := hut.Y1; y <= hut.Y2; y++ {
		for x := hut.X1; x <= hut.X2; x++ {
			if x == hut.X1 || x == hut.X2 || y == hut.Y1 || y == hut.Y2 {
				a.Map.Set(grid.P(x, y), gamemap.MakeWall())
			}
		}
	}
	cx, cy := hut.Center()
	a.Map.Set(grid.P(hut.X1, cy), gamemap.MakeDoor())
	a.Map.Set(grid.P(cx, hut.Y2), gamemap.MakeWindow())

	if _, err := a.SpawnPlayer(grid.P(3, h/2)); err != nil {
		return nil, fmt.Errorf("default arena: %w", err)
	}
	spawns := []struct {
		id string
		p  grid.Point
	}{
		{"zombie", grid.P(cx, cy)},
		{"soldier", grid.P(cx+1, cy)},
		{"dog", grid.P(w/3, h/2+2)},
		{"rat", grid.P(w/3+1, h/2-2)},
		{"turret", grid.P(w-4, h-4)},
	}
	for _, sp := range spawns {
		def, _ := assets.Creature(sp.id)
		if !a.InBounds(sp.p) {
			continue
		}
		if _, err := a.Spawn(def, sp.p); err != nil {
			log.Debug("default spawn skipped", zap.String("creature", sp.id), zap.Error(err))
		}
	}
	if car := grid.P(w/4, h-4); a.InBounds(car) {
		a.Map.At(car).Vehicle = &gamemap.VehiclePart{Name: "car", HP: 150}
	}
	if bottle, ok := assets.Item("bottle"); ok {
		a.DropItem(bottle, grid.P(5, h/2))
	}
	return a, nil
}

// Arena is the world being played with.
func (s *Sandbox) Arena() *arena.Arena { return s.arena }

// Engine is the effect engine bound to the arena.
func (s *Sandbox) Engine() *effect.Engine { return s.engine }

// Cursor is the current aiming cell.
func (s *Sandbox) Cursor() grid.Point { return s.cursor }

func (s *Sandbox) playerPos() grid.Point {
	if c := s.arena.ECS.Get(s.arena.Player, component.CPosition); c != nil {
		return c.(component.Position).Point()
	}
	return s.cursor
}

func (s *Sandbox) source() world.OccupantID { return world.OccupantID(s.arena.Player) }

// Run draws and handles input until the user quits.
func (s *Sandbox) Run() {
	defer s.screen.Fini()
	for {
		s.draw()
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.screen.Sync()
			s.renderer.Resize(s.cursor)
		case *tcell.EventKey:
			if !s.Apply(keyToAction(ev)) {
				return
			}
			s.animate()
		}
	}
}

// Apply performs one action and reports whether the sandbox should keep
// running.
func (s *Sandbox) Apply(act Action) bool {
	s.targets = shape.TargetSet{}
	s.frames = s.frames[:0]
	a, e := s.arena, s.engine

	if d := actionToDelta(act); d != (grid.Point{}) {
		if next := s.cursor.Add(d); a.InBounds(next) {
			s.cursor = next
		}
		return true
	}

	var err error
	switch act {
	case ActionQuit:
		return false
	case ActionWait:
		a.Tick()
	case ActionExplode:
		err = e.EnqueueExplosion(s.cursor, bigBang, s.source())
	case ActionGrenade:
		var d explosion.Descriptor
		if d, err = explosion.FromLegacy(grenadePower, grenadeDecay, true); err == nil {
			err = e.EnqueueExplosion(s.cursor, d, s.source())
		}
	case ActionFlashbang:
		err = e.EnqueueFlashbang(s.cursor, flashSafe, s.source())
	case ActionShockwave:
		err = e.EnqueueShockwave(s.cursor, thumper, s.source())
	case ActionCascade:
		err = e.EnqueueResonanceCascade(s.cursor, s.source())
	case ActionShowBlast:
		e.BlastTargets(s.cursor, shapeRadius, false)
	case ActionShowCone:
		e.ConeTargets(s.playerPos(), s.cursor, coneWidth, coneRange, false)
	case ActionShowLine:
		e.LineTargets(s.playerPos(), s.cursor, 1, false)
	case ActionPush, ActionPull:
		n := e.PushPull(s.cursor, pushRadius, act == ActionPush, true, true, true)
		a.Say("The wave moves %d things.", n)
	case ActionToggleVariant:
		v := blast.Sorted
		if e.Variant() == blast.Sorted {
			v = blast.Legacy
		}
		e.SetVariant(v)
		a.Say("Blast propagation: %s.", v)
	case ActionTeleport:
		if a.Player != ecs.NilEntity {
			a.Occupant(a.Player).KnockBackTo(s.cursor)
		}
	case ActionReset:
		if err := s.reset(); err != nil {
			s.log.Error("reset failed", zap.Error(err))
		}
		return true
	}
	if err != nil {
		s.log.Error("action failed", zap.Uint8("action", uint8(act)), zap.Error(err))
		a.Say("That did not work: %v", err)
	}

	e.Drain()
	a.UpdateFOV(viewRadius)
	return true
}

func (s *Sandbox) draw() {
	s.renderer.CenterOn(s.cursor)
	s.renderer.DrawArena(s.arena)
	s.renderer.DrawTargets(s.targets)
	s.renderer.DrawCursor(s.cursor)
	s.renderer.DrawHUD(s.status())
	s.renderer.Show()
}

// animate replays the blast frames recorded during the last action.
func (s *Sandbox) animate() {
	if len(s.frames) == 0 || s.cfg.Sandbox.FrameDelay <= 0 {
		return
	}
	for _, f := range s.frames {
		s.renderer.DrawArena(s.arena)
		s.renderer.DrawBlastFrame(f)
		s.renderer.DrawHUD(s.status())
		s.renderer.Show()
		time.Sleep(s.cfg.Sandbox.FrameDelay)
	}
}

func (s *Sandbox) status() render.Status {
	a := s.arena
	st := render.Status{
		Cursor:   s.cursor,
		Variant:  s.engine.Variant().String(),
		Metric:   s.cfg.Engine.DistanceMetric,
		Messages: a.Messages,
	}
	if c := a.ECS.Get(a.Player, component.CHealth); c != nil {
		hp := c.(component.Health)
		st.HP, st.MaxHP = hp.Current, hp.Max
	}
	if c := a.ECS.Get(a.Player, component.CEffects); c != nil {
		for _, eff := range c.(component.Effects).Active {
			st.Effects = append(st.Effects, fmt.Sprintf("%s %d", eff.Kind, eff.TurnsRemaining))
		}
	}
	return st
}
