package models

import "time"

type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPro     Plan = "pro"
	PlanPremium Plan = "premium"
)

type Tenant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Plan     Plan   `gorm:"size:20;default:'basic'" json:"plan"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
