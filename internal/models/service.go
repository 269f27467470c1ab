package models

import "time"

type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `gorm:"default:30" json:"duration_min"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
