package ecs

import "github.com/milk9111/brickbreaker/ecs/component"

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, system order, and the event queue.
type World struct {
	store    entityStore
	storages []*sparseSet // indexed by ComponentID
	systems  []System
	events   EventQueue

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then flushes the event queue. Events pushed
// during the cycle are visible to every later system in the same cycle.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.store.isAlive(e)
}

// Query returns all alive entities that carry every listed component.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	base := w.storage(ids[0])
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, len(base.ids()))
next:
	for _, id := range base.ids() {
		for _, cid := range ids[1:] {
			st := w.storage(cid)
			if st == nil || !st.has(id) {
				continue next
			}
		}
		e := makeEntity(id, w.store.gens[id-1])
		if w.store.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) storage(id component.ComponentID) *sparseSet {
	if w == nil || id == 0 {
		return nil
	}
	idx := int(id)
	for idx >= len(w.storages) {
		w.storages = append(w.storages, nil)
	}
	if w.storages[idx] == nil {
		w.storages[idx] = &sparseSet{}
	}
	return w.storages[idx]
}

func (w *World) destroyEntity(e Entity) bool {
	if !w.store.destroy(e) {
		return false
	}
	for _, st := range w.storages {
		if st != nil {
			st.remove(e.id())
		}
	}
	return true
}
