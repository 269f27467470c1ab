package appointment

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/audit"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

func seedPending(repo *fakeRepo) models.Appointment {
	return repo.seed(models.Appointment{
		TenantID: 1,
		ClientID: 10,
		BarberID: 2,
		Date:     testDate,
		Time:     "11:00",
		Status:   string(domain.StatusPending),
	})
}

func newStatusUC(repo *fakeRepo) *UpdateStatus {
	return NewUpdateStatus(repo, audit.Discard())
}

func TestUpdateStatusAdminAccepts(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo)
	uc := newStatusUC(repo)

	got, err := uc.Execute(context.Background(), adminActor, ap.ID, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Status != string(domain.StatusAccepted) {
		t.Fatalf("expected accepted, got %q", got.Status)
	}
}

func TestUpdateStatusAdminCompletesAccepted(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(models.Appointment{
		TenantID: 1, ClientID: 10, BarberID: 2,
		Date: testDate, Time: "11:00",
		Status: string(domain.StatusAccepted),
	})
	uc := newStatusUC(repo)

	got, err := uc.Execute(context.Background(), adminActor, ap.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Status != string(domain.StatusCompleted) {
		t.Fatalf("expected completed, got %q", got.Status)
	}
}

func TestUpdateStatusBarberOwnAppointment(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo)
	uc := newStatusUC(repo)

	if _, err := uc.Execute(context.Background(), barberActor, ap.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("barber should manage its own agenda: %v", err)
	}
}

func TestUpdateStatusBarberForeignAppointment(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(models.Appointment{
		TenantID: 1, ClientID: 10, BarberID: 3,
		Date: testDate, Time: "11:00",
		Status: string(domain.StatusPending),
	})
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), barberActor, ap.ID, domain.StatusAccepted)
	wantKind(t, err, apperr.KindAuthorization)
}

func TestUpdateStatusClientCancelsOwn(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo)
	uc := newStatusUC(repo)

	got, err := uc.Execute(context.Background(), clientActor, ap.ID, domain.StatusRejected)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Status != string(domain.StatusRejected) {
		t.Fatalf("expected rejected, got %q", got.Status)
	}
}

func TestUpdateStatusClientCannotAccept(t *testing.T) {
	repo := newFakeRepo()
	ap := seedPending(repo)
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), clientActor, ap.ID, domain.StatusAccepted)
	wantKind(t, err, apperr.KindAuthorization)
}

func TestUpdateStatusClientForeignAppointmentHidden(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(models.Appointment{
		TenantID: 1, ClientID: 11, BarberID: 2,
		Date: testDate, Time: "11:00",
		Status: string(domain.StatusPending),
	})
	uc := newStatusUC(repo)

	// Another client's booking reads as missing, not as forbidden.
	_, err := uc.Execute(context.Background(), clientActor, ap.ID, domain.StatusRejected)
	wantKind(t, err, apperr.KindNotFound)
}

func TestUpdateStatusTerminalStatesFrozen(t *testing.T) {
	for _, terminal := range []domain.Status{domain.StatusRejected, domain.StatusCompleted} {
		repo := newFakeRepo()
		ap := repo.seed(models.Appointment{
			TenantID: 1, ClientID: 10, BarberID: 2,
			Date: testDate, Time: "11:00",
			Status: string(terminal),
		})
		uc := newStatusUC(repo)

		_, err := uc.Execute(context.Background(), adminActor, ap.ID, domain.StatusAccepted)
		wantKind(t, err, apperr.KindValidation)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	uc := newStatusUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), adminActor, 99, domain.StatusAccepted)
	wantKind(t, err, apperr.KindNotFound)
}

func TestUpdateStatusOtherTenantAppointmentHidden(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(models.Appointment{
		TenantID: 2, ClientID: 10, BarberID: 2,
		Date: testDate, Time: "11:00",
		Status: string(domain.StatusPending),
	})
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), adminActor, ap.ID, domain.StatusAccepted)
	wantKind(t, err, apperr.KindNotFound)
}
