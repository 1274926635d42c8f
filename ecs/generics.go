package ecs

import "github.com/drube17/bossrush/ecs/component"

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return Entity(0)
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entity handles.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) error {
	if !h.Valid() {
		return component.ErrInvalidHandle
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(h.ID()).set(e.id(), v)
	return nil
}

// Get returns the entity's component for the handle, if present.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if w == nil || !h.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.storeIfPresent(h.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	_, ok := Get(w, e, h)
	return ok
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !h.Valid() || !w.entities.isAlive(e) {
		return false
	}
	s := w.storeIfPresent(h.ID())
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns some live entity carrying the component. Used for
// singletons like the player.
func First[T any](w *World, h component.Handle[T]) (Entity, bool) {
	if w == nil || !h.Valid() {
		return Entity(0), false
	}
	s := w.storeIfPresent(h.ID())
	if s == nil {
		return Entity(0), false
	}
	for _, id := range s.denseIDs {
		idx := int(id) - 1
		if idx < len(w.entities.alive) && w.entities.alive[idx] {
			return makeEntity(id, w.entities.gens[idx]), true
		}
	}
	return Entity(0), false
}

// Count returns the number of live entities carrying the component.
func Count[T any](w *World, h component.Handle[T]) int {
	n := 0
	ForEach(w, h, func(Entity, *T) { n++ })
	return n
}

// ForEach visits every live entity carrying the component. The callback
// may add or remove components and destroy entities.
func ForEach[T any](w *World, h component.Handle[T], fn func(Entity, *T)) {
	if w == nil || !h.Valid() || fn == nil {
		return
	}
	s := w.storeIfPresent(h.ID())
	if s == nil {
		return
	}
	for _, id := range s.ids() {
		idx := int(id) - 1
		if idx >= len(w.entities.alive) || !w.entities.alive[idx] {
			continue
		}
		e := makeEntity(id, w.entities.gens[idx])
		if v, ok := s.get(id).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(Entity, *A, *B)) {
	ForEach(w, ha, func(e Entity, a *A) {
		if b, ok := Get(w, e, hb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ha component.Handle[A], hb component.Handle[B], hc component.Handle[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ha, hb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, hc); ok {
			fn(e, a, b, c)
		}
	})
}
