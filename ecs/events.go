package ecs

import "github.com/milk9111/brickbreaker/common"

// EventType identifies the outbound gameplay signals.
type EventType string

const (
	EventBrickDamaged   EventType = "brick_damaged"
	EventBrickDestroyed EventType = "brick_destroyed"
	EventGravityChanged EventType = "gravity_changed"
	EventLifeLost       EventType = "life_lost"
	EventLevelComplete  EventType = "level_complete"
)

// Event is a queued gameplay signal.
type Event struct {
	Type EventType
	Data any
}

// BrickDamaged is emitted when a multi-hit brick steps down a stage.
type BrickDamaged struct {
	Brick Entity
	Code  int
}

// BrickDestroyed is emitted when a brick despawns. Score carries the bonus
// for scoring bricks and is zero otherwise.
type BrickDestroyed struct {
	Brick Entity
	Code  int
	Score int
}

// GravityChanged carries the gravity vector requested by a destroyed
// gravity brick. Several in one cycle apply in order; the last one wins.
type GravityChanged struct {
	Gravity common.Vec3
}

// LifeLost is emitted when the player loses a life, from any cause.
type LifeLost struct {
	Cause string
}

// LevelComplete is emitted once when the remaining-brick counter hits zero.
type LevelComplete struct {
	Number int
}

// EventQueue is a FIFO of the current cycle's signals. Systems read it
// non-destructively in order; the world flushes it at the end of the cycle.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(t EventType, data any) {
	if q == nil {
		return
	}
	q.items = append(q.items, Event{Type: t, Data: data})
}

// Items returns the events pushed so far this cycle, in emission order.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
