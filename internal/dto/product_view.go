package dto

import (
	"github.com/ebsaroptics/optical-center-api/internal/labels"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type ProductView struct {
	models.Product
	CategoryLabel string `json:"categoryLabel"`
	ImageURL      string `json:"imageUrl"`
	IsLowStock    bool   `json:"isLowStock"`
}

func NewProductView(p models.Product) ProductView {
	categoryLabel, _ := labels.ProductCategory(p.Category)

	return ProductView{
		Product:       p,
		CategoryLabel: categoryLabel,
		ImageURL:      p.Image,
		IsLowStock:    p.IsLowStock(),
	}
}

func NewProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}
