package models

import "time"

// Locations are never hard-deleted: archiving keeps the row so historical
// appointments and barber assignments stay resolvable.
type Location struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	Archived bool `gorm:"default:false;index" json:"archived"`

	Hours []LocationHours `gorm:"constraint:OnDelete:CASCADE" json:"hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LocationHours struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	LocationID uint `gorm:"index;not null" json:"location_id"`

	Weekday  int    `json:"weekday"`
	Open     bool   `json:"open"`
	OpensAt  string `gorm:"size:5" json:"opens_at"`  // "09:00"
	ClosesAt string `gorm:"size:5" json:"closes_at"` // "19:00"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
