package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type StatsResponse struct {
	Bookings  int64   `json:"bookings"`
	Customers int64   `json:"customers"`
	Expenses  float64 `json:"expenses"`

	ExpensesCount    int64 `json:"expensesCount"`
	Products         int64 `json:"products"`
	LowStockProducts int64 `json:"lowStockProducts"`

	// No sales ledger exists yet; always zero so the dashboard cannot
	// mistake it for real data.
	// TODO: replace with a real aggregation once a Sale model lands.
	Sales int64 `json:"sales"`
}

func (h *StatsHandler) Get(c *gin.Context) {
	var stats StatsResponse

	if err := h.db.Model(&models.Booking{}).
		Where("is_visible = ?", true).
		Count(&stats.Bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "حدث خطأ في جلب الإحصائيات")
		return
	}

	if err := h.db.Model(&models.Customer{}).
		Where("is_active = ?", true).
		Count(&stats.Customers).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "حدث خطأ في جلب الإحصائيات")
		return
	}

	var expenseAgg struct {
		Total float64
		Count int64
	}
	if err := h.db.Model(&models.Expense{}).
		Where("is_deleted = ?", false).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&expenseAgg).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "حدث خطأ في جلب الإحصائيات")
		return
	}
	stats.Expenses = expenseAgg.Total
	stats.ExpensesCount = expenseAgg.Count

	if err := h.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&stats.Products).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "حدث خطأ في جلب الإحصائيات")
		return
	}

	// Same predicate as the per-item flag and the low-stock listing.
	if err := h.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Where(models.LowStockCondition).
		Count(&stats.LowStockProducts).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats", "حدث خطأ في جلب الإحصائيات")
		return
	}

	c.JSON(http.StatusOK, stats)
}
