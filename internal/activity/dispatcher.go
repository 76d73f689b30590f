package activity

import "log"

type Event struct {
	SessionID string
	Action    string
	Entity    string
	EntityID  *int
	Metadata  any
}

// Sink persists dispatched events. *Logger is the production sink.
type Sink interface {
	Log(sessionID, action, entity string, entityID *int, metadata any) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.SessionID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("activity error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than ever blocking a request
		log.Println("activity queue full, dropping event")
	}
}
