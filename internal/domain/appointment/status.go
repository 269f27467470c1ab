package appointment

import "github.com/BruksfildServices01/barber-platform/internal/apperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// transitions maps a current status to the statuses it may move to.
// rejected and completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusRejected, StatusCompleted},
	StatusRejected:  {},
	StatusCompleted: {},
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func CanTransition(from, to Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Guard returns the validation error for an illegal transition, nil when the
// move is allowed.
func Guard(from, to Status) error {
	if !IsValid(to) {
		return apperr.Validation("invalid_status", "Estado inválido.")
	}
	if !CanTransition(from, to) {
		return apperr.Validation("invalid_transition", "Transição de estado inválida.")
	}
	return nil
}

// InitialStatus is pending for online bookings; manual bookings skip review
// and start accepted.
func InitialStatus(manual bool) Status {
	if manual {
		return StatusAccepted
	}
	return StatusPending
}

// Live reports whether the status holds the slot for the exclusivity check.
func Live(s Status) bool {
	return s != StatusRejected
}
