package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TenantID uint   `gorm:"index;not null" json:"tenant_id"`
	Tenant   Tenant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Weak link: the location may be archived after booking and the
	// appointment keeps pointing at it.
	LocationID *uint     `json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`

	Date string `gorm:"size:10;not null" json:"date"` // "2006-01-02"
	Time string `gorm:"size:5;not null" json:"time"`  // "15:04"

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	// Price of the service at booking time.
	Price float64 `json:"price"`

	CreatedManually bool  `gorm:"default:false" json:"created_manually"`
	CreatedBy       *uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
