// Package ecs stores occupants as entities with typed components.
package ecs

import "slices"

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// World is the central entity registry and component store.
// Query results are ordered by ID so seeded simulations replay exactly.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and drops all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity exists.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Count is the number of live entities.
func (w *World) Count() int { return len(w.alive) }

// Add attaches a component to an entity, replacing one of the same type.
// Adding to a dead entity is a no-op.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.components[t][id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.components[t], id)
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.components[t][id]
	return ok
}

// Query returns, in ascending ID order, all live entities that have every
// listed component type.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Scan the smallest store.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	var result []EntityID
	for id := range w.components[smallest] {
		if w.alive[id] && w.hasAll(id, types) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Each calls fn with every live entity holding a component of type t,
// in ascending ID order.
func (w *World) Each(t ComponentType, fn func(id EntityID, c Component)) {
	for _, id := range w.Query(t) {
		fn(id, w.components[t][id])
	}
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}
