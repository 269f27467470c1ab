package appointment

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

func seedAgenda(repo *fakeRepo) {
	repo.seed(models.Appointment{TenantID: 1, ClientID: 10, BarberID: 2, Date: testDate, Time: "09:00", Status: string(domain.StatusPending)})
	repo.seed(models.Appointment{TenantID: 1, ClientID: 11, BarberID: 2, Date: testDate, Time: "10:00", Status: string(domain.StatusAccepted)})
	repo.seed(models.Appointment{TenantID: 1, ClientID: 10, BarberID: 3, Date: testDate, Time: "09:00", Status: string(domain.StatusAccepted)})
}

func TestListAdminSeesWholeTenant(t *testing.T) {
	repo := newFakeRepo()
	seedAgenda(repo)
	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), ListInput{Actor: adminActor})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(out))
	}
}

func TestListAdminFiltersByBarber(t *testing.T) {
	repo := newFakeRepo()
	seedAgenda(repo)
	uc := NewListAppointments(repo)

	barberID := uint(3)
	out, err := uc.Execute(context.Background(), ListInput{Actor: adminActor, BarberID: &barberID})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out) != 1 || out[0].BarberID != 3 {
		t.Fatalf("expected only barber 3's agenda, got %d rows", len(out))
	}
}

func TestListBarberScopedToOwnAgenda(t *testing.T) {
	repo := newFakeRepo()
	seedAgenda(repo)
	uc := NewListAppointments(repo)

	// A barber cannot widen the filter to someone else's agenda.
	otherBarber := uint(3)
	out, err := uc.Execute(context.Background(), ListInput{Actor: barberActor, BarberID: &otherBarber})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, ap := range out {
		if ap.BarberID != barberActor.ID {
			t.Fatalf("barber listing leaked appointment of barber %d", ap.BarberID)
		}
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(out))
	}
}

func TestListClientScopedToOwnBookings(t *testing.T) {
	repo := newFakeRepo()
	seedAgenda(repo)
	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), ListInput{Actor: clientActor})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(out))
	}
	for _, ap := range out {
		if ap.ClientID != clientActor.ID {
			t.Fatalf("client listing leaked appointment of client %d", ap.ClientID)
		}
	}
}

func TestListFiltersByStatus(t *testing.T) {
	repo := newFakeRepo()
	seedAgenda(repo)
	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), ListInput{Actor: adminActor, Status: string(domain.StatusAccepted)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 accepted appointments, got %d", len(out))
	}
}
