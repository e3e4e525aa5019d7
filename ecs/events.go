package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type   string
	Entity Entity
	Data   any
}

// Collision event types raised by the physics system.
const (
	EventLanded   = "landed"
	EventHitWall  = "hit_wall"
	EventHitHead  = "hit_head"
	EventLeftFeet = "left_ground"
)

// EventQueue is a FIFO of events raised during one tick. The world clears it
// after all systems have run, so readers must be scheduled after writers.
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

// Pending returns the events raised so far this tick without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
