package mirror

import (
	"log"
	"sync"
)

// #region dispatcher

const queueSize = 256

// Dispatcher fans events out to sinks from a single background goroutine.
// Publish never blocks the caller: a full queue drops the event with a log
// line. Mirrors are convenience copies; the JSONL ledgers stay the record.
type Dispatcher struct {
	sinks []Sink
	ch    chan Event

	closeOnce sync.Once
	done      chan struct{}
}

// NewDispatcher starts the consumer goroutine. A nil sink is skipped, so
// callers can pass the result of a failed constructor directly.
func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		ch:   make(chan Event, queueSize),
		done: make(chan struct{}),
	}
	for _, s := range sinks {
		if s != nil {
			d.sinks = append(d.sinks, s)
		}
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for ev := range d.ch {
		for _, s := range d.sinks {
			if err := s.Record(ev); err != nil {
				log.Printf("[MIRROR] %s event dropped by sink: %v", ev.Kind, err)
			}
		}
	}
}

// Publish queues an event for mirroring. Best effort.
func (d *Dispatcher) Publish(ev Event) {
	select {
	case d.ch <- ev:
	default:
		log.Printf("[MIRROR] queue full, dropping %s event", ev.Kind)
	}
}

// Close drains the queue, then closes all sinks.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.ch)
		<-d.done
		for _, s := range d.sinks {
			if err := s.Close(); err != nil {
				log.Printf("[MIRROR] sink close: %v", err)
			}
		}
	})
}

// #endregion dispatcher
