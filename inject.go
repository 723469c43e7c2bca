package splat

// EventStore is the interface for optional ECS integration. When set on a
// window, every event the window produces is forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}

// eventQueue is the FIFO behind a window's PollEvent.
type eventQueue struct {
	pending []Event
	store   EventStore
}

func (q *eventQueue) push(e Event) {
	q.pending = append(q.pending, e)
	if q.store != nil {
		q.store.EmitEvent(e)
	}
}

// poll pops the oldest event.
func (q *eventQueue) poll() (Event, bool) {
	if len(q.pending) == 0 {
		return Event{}, false
	}
	e := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return e, true
}

// Injector accepts synthetic events. Both window implementations satisfy it
// so scripts can drive either one.
type Injector interface {
	InjectKeyDown(key string)
	InjectQuit()
}
