package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidHandle  = errors.New("ecs: invalid component handle")
)

// ID identifies a registered component type.
type ID uint32

var nextID atomic.Uint32

// Handle is the typed key for a component store. Each package-level
// NewHandle call registers a distinct component type.
type Handle[T any] struct {
	id ID
}

func NewHandle[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
