package models

import "time"

// Customer records are independent of bookings; nothing ties the two
// together.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:30" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	AddressStreet string `gorm:"size:255" json:"addressStreet"`
	AddressCity   string `gorm:"size:100" json:"addressCity"`

	Notes    string `gorm:"type:text" json:"notes"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
