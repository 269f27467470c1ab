package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-platform/internal/models"
)

// ListFilter narrows a role-scoped appointment listing. Zero values mean
// "no filter"; the use case fills BarberID/ClientID from the actor when the
// role restricts visibility.
type ListFilter struct {
	TenantID uint
	BarberID *uint
	ClientID *uint
	Date     string
	Status   string
}

type Repository interface {
	// -------- Tenant --------
	GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error)

	// -------- Referenced entities (tenant-scoped lookups) --------
	GetBarber(ctx context.Context, tenantID, barberID uint) (*models.User, error)
	GetService(ctx context.Context, tenantID, serviceID uint) (*models.Service, error)
	GetLocation(ctx context.Context, tenantID, locationID uint) (*models.Location, error)
	GetClient(ctx context.Context, tenantID, clientID uint) (*models.Client, error)

	// -------- Opening hours --------
	IsWithinOpeningHours(ctx context.Context, locationID uint, weekday int, hhmm string) (bool, error)

	// -------- Slot reservation --------
	// ReserveSlot checks the slot and inserts the appointment as one atomic
	// unit. Exactly one of two concurrent calls for the same
	// (tenant, barber, date, time) succeeds; the loser gets a conflict.
	ReserveSlot(ctx context.Context, ap *models.Appointment) error

	// -------- State changes / reads --------
	GetAppointment(ctx context.Context, tenantID, appointmentID uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
}
