package client

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
)

// ClientStats is a client row enriched with aggregates derived from the
// appointment data. Nothing here is stored; it is computed per request.
type ClientStats struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	CreatedManually bool    `json:"created_manually"`
	CreatedBy       *uint   `json:"created_by"`

	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	TotalSpent            float64 `json:"total_spent"`
	LastVisit             *string `json:"last_visit"`
}

type ListClientsWithStats struct {
	db *gorm.DB
}

func NewListClientsWithStats(db *gorm.DB) *ListClientsWithStats {
	return &ListClientsWithStats{db: db}
}

func (uc *ListClientsWithStats) Execute(
	ctx context.Context,
	actor auth.Actor,
) ([]ClientStats, error) {

	if !actor.IsAdmin() {
		return nil, apperr.Authorization("forbidden", "Apenas administradores podem aceder ao CRM.")
	}

	var rows []ClientStats
	err := uc.db.WithContext(ctx).Raw(`
        SELECT
            c.id,
            c.name,
            c.email,
            c.phone,
            c.created_manually,
            c.created_by,
            COUNT(a.id)                                                    AS total_appointments,
            COUNT(a.id) FILTER (WHERE a.status = 'completed')              AS completed_appointments,
            COALESCE(SUM(a.price) FILTER (WHERE a.status = 'completed'), 0) AS total_spent,
            MAX(a.date) FILTER (WHERE a.status = 'completed')              AS last_visit
        FROM clients c
        LEFT JOIN appointments a
            ON a.client_id = c.id AND a.tenant_id = c.tenant_id
        WHERE c.tenant_id = ?
        GROUP BY c.id
        ORDER BY c.created_at DESC
    `, actor.TenantID).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}
