package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/audit"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	if !auth.Can(actor, auth.ActionTransition, auth.ResourceAppointment) {
		return nil, apperr.Authorization("forbidden", "Sem permissão para alterar marcações.")
	}

	ap, err := uc.repo.GetAppointment(ctx, actor.TenantID, appointmentID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case auth.RoleAdmin:
		// Any appointment in the tenant.
	case auth.RoleBarber:
		if ap.BarberID != actor.ID {
			return nil, apperr.Authorization("forbidden", "Marcação atribuída a outro barbeiro.")
		}
	case auth.RoleClient:
		if ap.ClientID != actor.ID {
			return nil, apperr.NotFound("appointment_not_found", "Marcação não encontrada.")
		}
		// Clients can only request cancellation of their own bookings.
		if newStatus != domain.StatusRejected {
			return nil, apperr.Authorization("forbidden", "Clientes apenas podem cancelar marcações.")
		}
	default:
		return nil, apperr.Authorization("forbidden", "Sem permissão.")
	}

	if err := domain.Guard(domain.Status(ap.Status), newStatus); err != nil {
		return nil, err
	}

	previous := ap.Status
	ap.Status = string(newStatus)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		ActorID:  &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": previous, "to": string(newStatus)},
	})

	return ap, nil
}
