package audit

import "testing"

// Dispatch takes the drop branch whenever the queue is full; a burst larger
// than the queue must never panic.
func TestDiscardAbsorbsBursts(t *testing.T) {
	d := Discard()

	for i := 0; i < 200; i++ {
		d.Dispatch(Event{TenantID: 1, Action: "noop", Entity: "test"})
	}
}
