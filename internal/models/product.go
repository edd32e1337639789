package models

import "time"

// Product is a catalog item. IsActive is the soft-delete flag;
// ShowOnWebsite controls the public catalog independently of IsActive.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string  `gorm:"size:150;not null" json:"name"`
	Category string  `gorm:"size:20;default:'eyeglasses'" json:"category"`
	Brand    string  `gorm:"size:100;not null" json:"brand"`
	Price    float64 `gorm:"not null" json:"price"`

	Quantity          int `gorm:"default:0" json:"quantity"`
	LowStockThreshold int `gorm:"default:10" json:"lowStockThreshold"`

	Color               string `gorm:"size:50" json:"color"`
	FrameMaterial       string `gorm:"size:100" json:"frameMaterial"`
	LensType            string `gorm:"size:100" json:"lensType"`
	PrescriptionDetails string `gorm:"size:1000" json:"prescriptionDetails"`
	Description         string `gorm:"size:2000" json:"description"`

	Image string `gorm:"size:500" json:"image"` // external asset store URL

	IsActive      bool `gorm:"default:true" json:"isActive"`
	ShowOnWebsite bool `gorm:"default:false" json:"showOnWebsite"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the product has fallen to or below its reorder
// threshold. The listing and dashboard queries use LowStockCondition so all
// three stay on the same predicate.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

// LowStockCondition is the SQL form of IsLowStock.
const LowStockCondition = "quantity <= low_stock_threshold"
