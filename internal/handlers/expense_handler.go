package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	"github.com/ebsaroptics/optical-center-api/internal/dto"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/labels"
	"github.com/ebsaroptics/optical-center-api/internal/middleware"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type ExpenseHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewExpenseHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ExpenseHandler {
	return &ExpenseHandler{
		db:    db,
		audit: dispatcher,
	}
}

// --------- Requests ---------

type CreateExpenseRequest struct {
	EmployeeID  string  `json:"employeeId" binding:"required"`
	Purpose     string  `json:"purpose" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	Receipt     string  `json:"receipt"`
}

type UpdateExpenseRequest struct {
	Purpose     *string  `json:"purpose,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Receipt     *string  `json:"receipt,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *ExpenseHandler) List(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		httperr.BadRequest(c, "missing_employee_id", "معرف الموظف مطلوب")
		return
	}

	q := h.db.Where("employee_id = ?", employeeID)

	if c.Query("includeDeleted") != "true" {
		q = q.Where("is_deleted = ?", false)
	}

	var expenses []models.Expense
	if err := q.
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {

		httperr.Internal(c, "failed_to_list_expenses", "فشل في جلب المصروفات")
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseViews(expenses))
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "جميع الحقول مطلوبة")
		return
	}

	if _, ok := labels.ExpenseCategory(req.Category); !ok {
		httperr.BadRequest(c, "invalid_category", "فئة المصروف غير صحيحة")
		return
	}

	expense := models.Expense{
		EmployeeID:  req.EmployeeID,
		Purpose:     req.Purpose,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Receipt:     req.Receipt,
		Status:      "pending",
	}

	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "فشل في إضافة المصروف")
		return
	}

	c.JSON(http.StatusCreated, dto.NewExpenseView(expense))
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var expense models.Expense
	if err := h.db.First(&expense, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "المصروف غير موجود")
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseView(expense))
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var expense models.Expense
	if err := h.db.First(&expense, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "المصروف غير موجود")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "بيانات غير صحيحة")
		return
	}

	if req.Purpose != nil {
		expense.Purpose = *req.Purpose
	}
	if req.Category != nil {
		if _, ok := labels.ExpenseCategory(*req.Category); !ok {
			httperr.BadRequest(c, "invalid_category", "فئة المصروف غير صحيحة")
			return
		}
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			httperr.BadRequest(c, "invalid_amount", "المبلغ يجب أن يكون أكبر من صفر")
			return
		}
		expense.Amount = *req.Amount
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Receipt != nil {
		expense.Receipt = *req.Receipt
	}
	if req.Status != nil {
		if _, ok := labels.ExpenseStatus(*req.Status); !ok {
			httperr.BadRequest(c, "invalid_status", "حالة المصروف غير صحيحة")
			return
		}
		expense.Status = *req.Status

		// Approval state is stamped with the acting console user.
		if *req.Status == "approved" || *req.Status == "rejected" {
			now := time.Now()
			actor := c.GetString(middleware.ContextUsername)
			expense.ApprovedBy = &actor
			expense.ApprovedAt = &now

			h.audit.Dispatch(audit.Event{
				Actor:    actor,
				Action:   "expense_" + *req.Status,
				Entity:   "expense",
				EntityID: &expense.ID,
			})
		}
	}

	if err := h.db.Save(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_update_expense", "فشل في تحديث المصروف")
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseView(expense))
}

func (h *ExpenseHandler) SoftDelete(c *gin.Context) {
	id := c.Param("id")

	var expense models.Expense
	if err := h.db.First(&expense, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "المصروف غير موجود")
		return
	}

	expense.SoftDelete(time.Now())
	if err := h.db.Save(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_expense", "فشل في حذف المصروف")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف المصروف بنجاح"})
}
