package repository

import (
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/models"
)

// dryRunDB builds a gorm session that renders SQL without touching a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=postgres dbname=postgres port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

// Postgres rejects FOR UPDATE combined with aggregate functions, so the slot
// pre-check must lock a plain row select, never a count.
func TestLiveSlotQueryLocksRowsNotAggregates(t *testing.T) {
	db := dryRunDB(t)

	ap := &models.Appointment{TenantID: 1, BarberID: 2, Date: "2030-01-07", Time: "10:00"}

	var existing []models.Appointment
	stmt := liveSlotQuery(db, ap).Find(&existing).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("slot pre-check must lock the row, got %q", sql)
	}
	if strings.Contains(strings.ToLower(sql), "count(") {
		t.Fatalf("slot pre-check must not aggregate under a row lock, got %q", sql)
	}
	if !strings.Contains(sql, "status <> ") {
		t.Fatalf("slot pre-check must exclude rejected rows, got %q", sql)
	}
}
