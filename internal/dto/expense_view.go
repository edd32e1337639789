package dto

import (
	"github.com/ebsaroptics/optical-center-api/internal/labels"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type ExpenseView struct {
	models.Expense
	CategoryLabel string `json:"categoryLabel"`
	StatusLabel   string `json:"statusLabel"`
}

func NewExpenseView(e models.Expense) ExpenseView {
	categoryLabel, _ := labels.ExpenseCategory(e.Category)
	statusLabel, _ := labels.ExpenseStatus(e.Status)

	return ExpenseView{
		Expense:       e,
		CategoryLabel: categoryLabel,
		StatusLabel:   statusLabel,
	}
}

func NewExpenseViews(expenses []models.Expense) []ExpenseView {
	views := make([]ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, NewExpenseView(e))
	}
	return views
}
