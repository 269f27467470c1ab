package quota

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

// maxLocations maps a subscription plan to the number of active locations it
// allows. Archived locations never count against the limit.
var maxLocations = map[models.Plan]int{
	models.PlanBasic:   1,
	models.PlanPro:     3,
	models.PlanPremium: 10,
}

func MaxLocations(plan models.Plan) int {
	if limit, ok := maxLocations[plan]; ok {
		return limit
	}
	return maxLocations[models.PlanBasic]
}

// Allowed is the pure quota decision: may a tenant on this plan create one
// more location given its current active count.
func Allowed(plan models.Plan, activeCount int) bool {
	return activeCount < MaxLocations(plan)
}

// lockedTenant fetches the tenant row FOR UPDATE. At READ COMMITTED a plain
// count-then-insert does not serialize, so every location create must hold
// this lock before counting.
func lockedTenant(tx *gorm.DB, tenantID uint) *gorm.DB {
	return tx.
		Model(&models.Tenant{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", tenantID)
}

// EnsureCanCreateLocation locks the tenant row, counts active locations and
// fails with the quota error when the plan limit is reached. Run it inside
// the same transaction as the insert: the row lock serializes concurrent
// creates for the same tenant, so the count cannot go stale between check
// and insert.
func EnsureCanCreateLocation(tx *gorm.DB, tenantID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := lockedTenant(tx, tenantID).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant_not_found", "Barbearia não encontrada.")
		}
		return nil, err
	}

	var count int64
	if err := tx.
		Model(&models.Location{}).
		Where("tenant_id = ? AND archived = ?", tenant.ID, false).
		Count(&count).Error; err != nil {
		return nil, err
	}

	if !Allowed(tenant.Plan, int(count)) {
		return nil, apperr.QuotaExceeded(
			"location_limit_reached",
			fmt.Sprintf("Limite de %d locais do seu plano atingido. Faça upgrade para criar mais locais.", MaxLocations(tenant.Plan)),
		)
	}

	return &tenant, nil
}
