package appointment

import (
	"testing"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  Status
		to    Status
		valid bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusAccepted, StatusRejected, true},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusPending, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusCompleted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusAccepted, false},
		{StatusCompleted, StatusRejected, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestGuardRejectsInvalidTarget(t *testing.T) {
	err := Guard(StatusPending, Status("scheduled"))
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGuardTerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusRejected, StatusCompleted} {
		for _, to := range []Status{StatusPending, StatusAccepted, StatusRejected, StatusCompleted} {
			if err := Guard(terminal, to); err == nil {
				t.Fatalf("expected %q -> %q to be rejected", terminal, to)
			}
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(false); got != StatusPending {
		t.Fatalf("online booking should start pending, got %q", got)
	}
	if got := InitialStatus(true); got != StatusAccepted {
		t.Fatalf("manual booking should start accepted, got %q", got)
	}
}

func TestLive(t *testing.T) {
	if Live(StatusRejected) {
		t.Fatal("rejected must not hold the slot")
	}
	for _, s := range []Status{StatusPending, StatusAccepted, StatusCompleted} {
		if !Live(s) {
			t.Fatalf("%q must hold the slot", s)
		}
	}
}
