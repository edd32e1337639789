package models

import "time"

// Expense is an employee-submitted purchase awaiting approval. EmployeeID
// is a free-text identifier; no referential integrity is enforced.
type Expense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID string `gorm:"size:100;not null" json:"employeeId"`
	Purpose    string `gorm:"size:255;not null" json:"purpose"`
	Category   string `gorm:"size:30;default:'other'" json:"category"`
	Amount     float64 `gorm:"not null" json:"amount"`

	Description string `gorm:"size:500" json:"description"`
	Receipt     string `gorm:"size:500" json:"receipt"` // receipt image/file URL

	Status     string     `gorm:"size:20;default:'pending'" json:"status"`
	ApprovedBy *string    `gorm:"size:100" json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`

	IsDeleted bool       `gorm:"default:false" json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Expense) SoftDelete(now time.Time) {
	e.IsDeleted = true
	e.DeletedAt = &now
}

func (e *Expense) Restore() {
	e.IsDeleted = false
	e.DeletedAt = nil
}
