package audit

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Event struct {
	TenantID uint
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit events off the request path. The queue drops under
// pressure: auditing must never fail an API call.
type Dispatcher struct {
	logger *Logger
	log    *logrus.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.TenantID,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.WithError(err).Warn("audit write failed")
		}
	}
}

// Discard returns a dispatcher that drops every event; used by tests that
// exercise use cases without a database. The silenced logger keeps Dispatch
// safe when a burst fills the queue before the drain goroutine runs.
func Discard() *Dispatcher {
	log := logrus.New()
	log.SetOutput(io.Discard)

	d := &Dispatcher{log: log, queue: make(chan Event, 16)}
	go func() {
		for range d.queue {
		}
	}()
	return d
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}
