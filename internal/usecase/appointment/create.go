package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/audit"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
	"github.com/BruksfildServices01/barber-platform/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Actor auth.Actor

	ClientID   uint
	BarberID   uint
	ServiceID  uint
	LocationID *uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// Manual bookings are created by staff, skip review (start accepted)
	// and record who created them.
	Manual bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	if !auth.Can(in.Actor, auth.ActionCreate, auth.ResourceAppointment) {
		return nil, apperr.Authorization("forbidden", "Sem permissão para criar marcações.")
	}
	if in.Manual && in.Actor.IsClient() {
		return nil, apperr.Authorization("forbidden", "Sem permissão para criar marcações manuais.")
	}

	tenant, err := uc.repo.GetTenantByID(ctx, in.Actor.TenantID)
	if err != nil {
		return nil, err
	}

	slot, err := timezone.ParseSlot(tenant.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, apperr.Validation("invalid_date_or_time", "Data ou hora inválida.")
	}

	barber, err := uc.repo.GetBarber(ctx, in.Actor.TenantID, in.BarberID)
	if err != nil {
		return nil, err
	}

	// A barber may only book into its own agenda. The target must resolve
	// first so a missing barber stays a not-found, not a forbidden.
	if in.Manual && in.Actor.IsBarber() && in.BarberID != in.Actor.ID {
		return nil, apperr.Authorization("barber_mismatch", "Barbeiros só podem criar marcações para si próprios.")
	}

	if !barber.Active {
		return nil, apperr.Validation("barber_inactive", "Barbeiro inativo.")
	}

	service, err := uc.repo.GetService(ctx, in.Actor.TenantID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, apperr.Validation("service_inactive", "Serviço inativo.")
	}

	if in.LocationID != nil {
		location, err := uc.repo.GetLocation(ctx, in.Actor.TenantID, *in.LocationID)
		if err != nil {
			return nil, err
		}
		if location.Archived {
			return nil, apperr.Validation("location_archived", "Local arquivado.")
		}

		open, err := uc.repo.IsWithinOpeningHours(ctx, location.ID, int(slot.Weekday()), in.Time)
		if err != nil {
			return nil, err
		}
		if !open {
			return nil, apperr.Validation("outside_opening_hours", "Fora do horário de funcionamento.")
		}
	}

	clientID := in.ClientID
	if in.Actor.IsClient() {
		clientID = in.Actor.ID
	}
	if _, err := uc.repo.GetClient(ctx, in.Actor.TenantID, clientID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		TenantID:   in.Actor.TenantID,
		ClientID:   clientID,
		BarberID:   in.BarberID,
		ServiceID:  service.ID,
		LocationID: in.LocationID,
		Date:       slot.Format("2006-01-02"),
		Time:       slot.Format("15:04"),
		Status:     string(domain.InitialStatus(in.Manual)),
		Notes:      in.Notes,
		Price:      service.Price,
	}

	if in.Manual {
		actorID := in.Actor.ID
		ap.CreatedManually = true
		ap.CreatedBy = &actorID
	}

	// Exclusivity check and insert are one atomic unit: of two concurrent
	// requests for the same slot, exactly one wins.
	if err := uc.repo.ReserveSlot(ctx, ap); err != nil {
		return nil, err
	}

	actorID := in.Actor.ID
	uc.audit.Dispatch(audit.Event{
		TenantID: in.Actor.TenantID,
		ActorID:  &actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"date": ap.Date, "time": ap.Time, "manual": in.Manual},
	})

	return ap, nil
}
