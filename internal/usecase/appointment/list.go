package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

type ListInput struct {
	Actor  auth.Actor
	Date   string
	Status string

	// Admin-only filter; ignored for other roles, which are always scoped
	// to their own appointments.
	BarberID *uint
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	if !auth.Can(in.Actor, auth.ActionRead, auth.ResourceAppointment) {
		return nil, apperr.Authorization("forbidden", "Sem permissão para listar marcações.")
	}

	f := domain.ListFilter{
		TenantID: in.Actor.TenantID,
		Date:     in.Date,
		Status:   in.Status,
	}

	switch in.Actor.Role {
	case auth.RoleAdmin:
		f.BarberID = in.BarberID
	case auth.RoleBarber:
		id := in.Actor.ID
		f.BarberID = &id
	case auth.RoleClient:
		id := in.Actor.ID
		f.ClientID = &id
	default:
		return nil, apperr.Authorization("forbidden", "Sem permissão.")
	}

	return uc.repo.ListAppointments(ctx, f)
}
