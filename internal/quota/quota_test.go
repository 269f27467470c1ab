package quota

import (
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/models"
)

func TestMaxLocations(t *testing.T) {
	cases := []struct {
		plan models.Plan
		want int
	}{
		{models.PlanBasic, 1},
		{models.PlanPro, 3},
		{models.PlanPremium, 10},
		{models.Plan("enterprise"), 1}, // unknown plans fall back to basic
	}

	for _, tt := range cases {
		if got := MaxLocations(tt.plan); got != tt.want {
			t.Fatalf("MaxLocations(%q)=%d, want %d", tt.plan, got, tt.want)
		}
	}
}

func TestAllowed(t *testing.T) {
	cases := []struct {
		name   string
		plan   models.Plan
		active int
		want   bool
	}{
		{"basic empty", models.PlanBasic, 0, true},
		{"basic at limit", models.PlanBasic, 1, false},
		{"pro below limit", models.PlanPro, 2, true},
		{"pro at limit", models.PlanPro, 3, false},
		{"premium below limit", models.PlanPremium, 9, true},
		{"premium at limit", models.PlanPremium, 10, false},
		{"over limit", models.PlanBasic, 5, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.plan, tt.active); got != tt.want {
				t.Fatalf("Allowed(%q, %d)=%v, want %v", tt.plan, tt.active, got, tt.want)
			}
		})
	}
}

// The quota gate is only race-free if the tenant fetch takes a row lock:
// without FOR UPDATE, two concurrent creates at limit-1 both count below the
// limit and both insert.
func TestLockedTenantTakesRowLock(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=postgres dbname=postgres port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	var tenants []models.Tenant
	stmt := lockedTenant(db, 1).Find(&tenants).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("tenant fetch must lock the row, got %q", sql)
	}
	if !strings.Contains(sql, `"tenants"`) {
		t.Fatalf("expected a tenants query, got %q", sql)
	}
}
