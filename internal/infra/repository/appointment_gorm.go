package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

const uniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTenantByID(
	ctx context.Context,
	id uint,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant_not_found", "Barbearia não encontrada.")
		}
		return nil, err
	}
	return &tenant, nil
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	tenantID uint,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ? AND role = ?", barberID, tenantID, "barbeiro").
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("barber_not_found", "Barbeiro não encontrado.")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	tenantID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("service_not_found", "Serviço não encontrado.")
		}
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetLocation(
	ctx context.Context,
	tenantID uint,
	locationID uint,
) (*models.Location, error) {

	// Archived locations resolve too: historical appointments keep
	// referencing them.
	var location models.Location
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", locationID, tenantID).
		First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("location_not_found", "Local não encontrado.")
		}
		return nil, err
	}
	return &location, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	tenantID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", clientID, tenantID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client_not_found", "Cliente não encontrado.")
		}
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Opening hours
// --------------------------------------------------

func (r *AppointmentGormRepository) IsWithinOpeningHours(
	ctx context.Context,
	locationID uint,
	weekday int,
	hhmm string,
) (bool, error) {

	var hours models.LocationHours
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND weekday = ?", locationID, weekday).
		First(&hours).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No schedule row published for this weekday: treat as open.
			return true, nil
		}
		return false, err
	}

	if !hours.Open {
		return false, nil
	}
	if hours.OpensAt == "" || hours.ClosesAt == "" {
		return true, nil
	}

	// "HH:MM" compares correctly as a string.
	return hhmm >= hours.OpensAt && hhmm < hours.ClosesAt, nil
}

// --------------------------------------------------
// Slot reservation
// --------------------------------------------------

// liveSlotQuery selects the live appointment holding the slot, locking the
// row. Postgres refuses FOR UPDATE on aggregates, so the check fetches a row
// instead of counting.
func liveSlotQuery(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"tenant_id = ? AND barber_id = ? AND date = ? AND time = ? AND status <> ?",
			ap.TenantID, ap.BarberID, ap.Date, ap.Time, "rejected",
		).
		Limit(1)
}

func (r *AppointmentGormRepository) ReserveSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Appointment
		if err := liveSlotQuery(tx, ap).Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			return apperr.Conflict("slot_conflict", "Horário já reservado.")
		}

		return tx.Create(ap).Error
	})

	// The partial unique index is the authority when two inserts race past
	// the locked check on different connections.
	if isUniqueViolation(err) {
		return apperr.Conflict("slot_conflict", "Horário já reservado.")
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// --------------------------------------------------
// State changes / reads
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Preload("Location").
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appointment_not_found", "Marcação não encontrada.")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Preload("Location").
		Where("tenant_id = ?", f.TenantID)

	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
