package models

import "time"

// Client is a booking customer. A nil PasswordHash marks a shadow client
// created by staff on the customer's behalf; those get a synthetic
// "@manual.local" email when none was supplied.
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"uniqueIndex:idx_clients_tenant_email;not null" json:"tenant_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex:idx_clients_tenant_email;not null" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`

	PasswordHash *string `gorm:"size:255" json:"-"`

	CreatedManually bool  `gorm:"default:false" json:"created_manually"`
	CreatedBy       *uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registered reports whether the client can authenticate.
func (c *Client) Registered() bool {
	return c.PasswordHash != nil && *c.PasswordHash != ""
}
