package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// CameraEventKind identifies camera follow transitions.
type CameraEventKind string

const (
	CameraEventTravelStarted CameraEventKind = "travel_started"
	CameraEventArrived       CameraEventKind = "arrived"
	CameraEventSettleFired   CameraEventKind = "settle_fired"
	CameraEventTargetLost    CameraEventKind = "target_lost"
)

const CameraEventType = "camera"

// CameraEvent is emitted when a camera changes follow phase.
type CameraEvent struct {
	Camera Entity
	Kind   CameraEventKind
}

// EventQueue is a simple FIFO queue, cleared at the end of every update.
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

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
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
