// Package arena is the concrete world the engine runs against: a stack of
// map levels plus the entities standing on them.
package arena

import (
	"errors"
	"fmt"
	"math/rand"

	"blastradius/assets"
	"blastradius/internal/component"
	"blastradius/internal/ecs"
	"blastradius/internal/factory"
	"blastradius/internal/gamemap"
	"blastradius/internal/grid"
	"blastradius/internal/system"
	"blastradius/internal/world"

	"go.uber.org/zap"
)

var (
	ErrBlocked  = errors.New("arena: cell is not walkable")
	ErrOccupied = errors.New("arena: cell is occupied")
)

// maxMessages bounds the message log.
const maxMessages = 50

// Arena implements world.World and world.Anomalies.
type Arena struct {
	Map    *gamemap.GameMap
	ECS    *ecs.World
	Player ecs.EntityID
	Traps  map[grid.Point]world.Trap

	Messages []string

	rng   *rand.Rand
	log   *zap.Logger
	index map[grid.Point]ecs.EntityID
	dirty bool
}

// New wraps m with an empty entity world.
func New(m *gamemap.GameMap, rng *rand.Rand, log *zap.Logger) *Arena {
	if log == nil {
		log = zap.NewNop()
	}
	return &Arena{
		Map:   m,
		ECS:   ecs.NewWorld(),
		Traps: make(map[grid.Point]world.Trap),
		rng:   rng,
		log:   log,
		dirty: true,
	}
}

// Say appends a line to the message log.
func (a *Arena) Say(format string, args ...any) {
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
	if len(a.Messages) > maxMessages {
		a.Messages = a.Messages[len(a.Messages)-maxMessages:]
	}
}

func (a *Arena) place(p grid.Point) error {
	if !a.Map.IsWalkable(p) {
		return fmt.Errorf("place at %v: %w", p, ErrBlocked)
	}
	if _, ok := a.entityAt(p); ok {
		return fmt.Errorf("place at %v: %w", p, ErrOccupied)
	}
	return nil
}

// SpawnPlayer puts the player at p. Only one player exists at a time.
func (a *Arena) SpawnPlayer(p grid.Point) (ecs.EntityID, error) {
	if err := a.place(p); err != nil {
		return ecs.NilEntity, err
	}
	if a.Player != ecs.NilEntity {
		a.ECS.DestroyEntity(a.Player)
	}
	a.Player = factory.NewPlayer(a.ECS, p)
	a.dirty = true
	return a.Player, nil
}

// Spawn places a creature from def at p.
func (a *Arena) Spawn(def assets.CreatureDef, p grid.Point) (ecs.EntityID, error) {
	if err := a.place(p); err != nil {
		return ecs.NilEntity, err
	}
	id := factory.NewCreature(a.ECS, def, p)
	a.dirty = true
	return id, nil
}

// DropItem leaves an item on p.
func (a *Arena) DropItem(def assets.ItemDef, p grid.Point) {
	if a.Map.InBounds(p) {
		t := a.Map.At(p)
		t.Items = append(t.Items, factory.NewItem(def))
	}
}

// Occupant returns the occupant view of an entity.
func (a *Arena) Occupant(id ecs.EntityID) world.Occupant {
	return &creature{a: a, id: id}
}

// Touch marks the position index stale after entities moved outside the arena.
func (a *Arena) Touch() { a.dirty = true }

func (a *Arena) reindex() {
	a.index = make(map[grid.Point]ecs.EntityID)
	for _, id := range a.ECS.Query(component.CPosition, component.CTagBlocking) {
		p := a.ECS.Get(id, component.CPosition).(component.Position).Point()
		a.index[p] = id
	}
	a.dirty = false
}

func (a *Arena) entityAt(p grid.Point) (ecs.EntityID, bool) {
	if a.dirty {
		a.reindex()
	}
	id, ok := a.index[p]
	if ok && !a.ECS.Alive(id) {
		return ecs.NilEntity, false
	}
	return id, ok
}

// Creatures returns every creature entity in ID order.
func (a *Arena) Creatures() []ecs.EntityID {
	return a.ECS.Query(component.CPosition, component.CHealth)
}

// Tick advances timed statuses by one turn.
func (a *Arena) Tick() {
	system.TickEffects(a.ECS)
}

// UpdateFOV recomputes what the player sees.
func (a *Arena) UpdateFOV(radius int) {
	system.UpdateFOV(a.ECS, a.Map, a.Player, radius)
}

// Open builds a single-level arena with a floor everywhere except a wall
// ring around the edge.
func Open(width, height int, rng *rand.Rand, log *zap.Logger) *Arena {
	m := gamemap.New(width, height, 1)
	m.Fill(gamemap.Rect{X1: 1, Y1: 1, X2: width - 2, Y2: height - 2}, 0, gamemap.MakeFloor())
	return New(m, rng, log)
}
