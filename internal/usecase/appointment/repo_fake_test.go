package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

// fakeRepo is an in-memory Repository for exercising the scheduling rules
// without a database. ReserveSlot mirrors the real exclusivity semantics:
// one live appointment per (tenant, barber, date, time), rejected rows do
// not hold the slot.
type fakeRepo struct {
	tenant       *models.Tenant
	barbers      map[uint]*models.User
	services     map[uint]*models.Service
	locations    map[uint]*models.Location
	clients      map[uint]*models.Client
	hours        map[uint][]models.LocationHours
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tenant: &models.Tenant{ID: 1, Name: "Barbearia Central", Slug: "barbearia-central", Plan: models.PlanPro, Timezone: "Europe/Lisbon"},
		barbers: map[uint]*models.User{
			2: {ID: 2, TenantID: 1, Name: "Rui", Role: "barbeiro", Active: true},
			3: {ID: 3, TenantID: 1, Name: "Miguel", Role: "barbeiro", Active: true},
			4: {ID: 4, TenantID: 1, Name: "Carlos", Role: "barbeiro", Active: false},
		},
		services: map[uint]*models.Service{
			1: {ID: 1, TenantID: 1, Name: "Corte", Price: 12.5, Active: true},
			2: {ID: 2, TenantID: 1, Name: "Barba antiga", Price: 8, Active: false},
		},
		locations: map[uint]*models.Location{
			1: {ID: 1, TenantID: 1, Name: "Loja Baixa"},
			2: {ID: 2, TenantID: 1, Name: "Loja Antiga", Archived: true},
		},
		clients: map[uint]*models.Client{
			10: {ID: 10, TenantID: 1, Name: "Ana", Email: "ana@example.com"},
			11: {ID: 11, TenantID: 1, Name: "Bruno", Email: "bruno@example.com"},
		},
		hours: map[uint][]models.LocationHours{
			1: {{LocationID: 1, Weekday: 1, Open: true, OpensAt: "09:00", ClosesAt: "19:00"}},
		},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) GetTenantByID(_ context.Context, id uint) (*models.Tenant, error) {
	if f.tenant == nil || f.tenant.ID != id {
		return nil, apperr.NotFound("tenant_not_found", "Barbearia não encontrada.")
	}
	return f.tenant, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, tenantID, barberID uint) (*models.User, error) {
	b, ok := f.barbers[barberID]
	if !ok || b.TenantID != tenantID {
		return nil, apperr.NotFound("barber_not_found", "Barbeiro não encontrado.")
	}
	return b, nil
}

func (f *fakeRepo) GetService(_ context.Context, tenantID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.TenantID != tenantID {
		return nil, apperr.NotFound("service_not_found", "Serviço não encontrado.")
	}
	return s, nil
}

func (f *fakeRepo) GetLocation(_ context.Context, tenantID, locationID uint) (*models.Location, error) {
	l, ok := f.locations[locationID]
	if !ok || l.TenantID != tenantID {
		return nil, apperr.NotFound("location_not_found", "Local não encontrado.")
	}
	return l, nil
}

func (f *fakeRepo) GetClient(_ context.Context, tenantID, clientID uint) (*models.Client, error) {
	c, ok := f.clients[clientID]
	if !ok || c.TenantID != tenantID {
		return nil, apperr.NotFound("client_not_found", "Cliente não encontrado.")
	}
	return c, nil
}

func (f *fakeRepo) IsWithinOpeningHours(_ context.Context, locationID uint, weekday int, hhmm string) (bool, error) {
	rows, ok := f.hours[locationID]
	if !ok {
		return true, nil
	}
	for _, h := range rows {
		if h.Weekday != weekday {
			continue
		}
		if !h.Open {
			return false, nil
		}
		return hhmm >= h.OpensAt && hhmm < h.ClosesAt, nil
	}
	return true, nil
}

func (f *fakeRepo) ReserveSlot(_ context.Context, ap *models.Appointment) error {
	for _, ex := range f.appointments {
		if ex.TenantID == ap.TenantID &&
			ex.BarberID == ap.BarberID &&
			ex.Date == ap.Date &&
			ex.Time == ap.Time &&
			domain.Live(domain.Status(ex.Status)) {
			return apperr.Conflict("slot_conflict", "Horário já reservado para este barbeiro.")
		}
	}
	f.nextID++
	ap.ID = f.nextID
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, tenantID, appointmentID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.TenantID != tenantID {
		return nil, apperr.NotFound("appointment_not_found", "Marcação não encontrada.")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return apperr.NotFound("appointment_not_found", "Marcação não encontrada.")
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.TenantID != filter.TenantID {
			continue
		}
		if filter.BarberID != nil && ap.BarberID != *filter.BarberID {
			continue
		}
		if filter.ClientID != nil && ap.ClientID != *filter.ClientID {
			continue
		}
		if filter.Date != "" && ap.Date != filter.Date {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// seed inserts an appointment directly, bypassing the reservation path.
func (f *fakeRepo) seed(ap models.Appointment) models.Appointment {
	f.nextID++
	ap.ID = f.nextID
	stored := ap
	f.appointments[ap.ID] = &stored
	return ap
}
