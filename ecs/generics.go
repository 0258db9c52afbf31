package ecs

import "github.com/milk9111/brickbreaker/ecs/component"

// CreateEntity allocates a new entity in the world.
func CreateEntity(w *World) Entity {
	return w.store.create()
}

// DestroyEntity removes an entity and all of its components. Returns false
// if the handle was already dead.
func DestroyEntity(w *World, e Entity) bool {
	return w.destroyEntity(e)
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every alive entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.store.entities()
}

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.storage(kind.ID()).set(e.id(), value)
	return nil
}

// Get returns the component for an entity, or (nil, false).
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() || !w.IsAlive(e) {
		return nil, false
	}
	v := w.storage(kind.ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// Has reports whether an entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() || !w.IsAlive(e) {
		return false
	}
	return w.storage(kind.ID()).has(e.id())
}

// Remove detaches the component from an entity if present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() || !w.IsAlive(e) {
		return false
	}
	return w.storage(kind.ID()).remove(e.id())
}

// ForEach visits every alive entity carrying the component. The entity list
// is snapshotted first, so callbacks may add or destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	if w == nil || !kind.Valid() || fn == nil {
		return
	}
	st := w.storage(kind.ID())
	ids := append([]entityID(nil), st.ids()...)
	for _, id := range ids {
		e := makeEntity(id, w.store.gens[id-1])
		if !w.store.isAlive(e) {
			continue
		}
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every alive entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// First returns an arbitrary alive entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !kind.Valid() {
		return 0, false
	}
	for _, id := range w.storage(kind.ID()).ids() {
		e := makeEntity(id, w.store.gens[id-1])
		if w.store.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
