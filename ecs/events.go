package ecs

// Event is a world event payload drained by the game loop after systems run.
type Event struct {
	Type string
	Data any
}

const (
	// EventBossDefeated fires once when a boss's health first reaches zero.
	EventBossDefeated = "boss_defeated"
	// EventPlayerDefeated fires once when the player's health reaches zero.
	EventPlayerDefeated = "player_defeated"
)

// BossDefeated carries the score award and death position for the
// external observers of the Dead transition (score, explosion, sound).
type BossDefeated struct {
	Entity Entity
	Stage  int
	Points int
	X, Y   float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
