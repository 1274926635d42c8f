package ecs

import (
	"math/rand"
	"time"

	"github.com/drube17/bossrush/ecs/component"
)

// System advances some slice of world state by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, component stores, the event queue, and the random
// source. The random source is injectable so tests can assert
// deterministic pattern and relocation sequences.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	events   EventQueue
	rng      *rand.Rand
}

// NewWorld creates an empty world with a time-seeded random source.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ID]*sparseSet),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the world's random source.
func (w *World) SetRand(r *rand.Rand) {
	if w == nil || r == nil {
		return
	}
	w.rng = r
}

// Float64 draws from the world's random source, falling back to the
// package-level source if none was set.
func (w *World) Float64() float64 {
	if w != nil && w.rng != nil {
		return w.rng.Float64()
	}
	return rand.Float64()
}

// RandRange draws a uniform value in [min, max).
func (w *World) RandRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + w.Float64()*(max-min)
}

// Intn draws a uniform int in [0, n).
func (w *World) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if w != nil && w.rng != nil {
		return w.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ID) *sparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ID]*sparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfPresent(id component.ID) *sparseSet {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}
