package models

import "time"

// User is a staff account: the tenant admin or a barber. Barbers carry the
// schedulable-resource profile; LocationID is a weak link and survives the
// location being archived.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `gorm:"index;not null" json:"tenant_id"`
	Tenant   Tenant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'barbeiro'" json:"role"`

	Bio         string      `gorm:"size:500" json:"bio"`
	Photo       string      `gorm:"size:255" json:"photo"`
	Specialties JSONStrings `gorm:"type:text" json:"specialties"`
	Active      bool        `gorm:"default:true" json:"active"`
	LocationID  *uint       `json:"location_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
