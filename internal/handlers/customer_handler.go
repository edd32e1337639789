package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/httpresp"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	AddressStreet string `json:"addressStreet"`
	AddressCity   string `json:"addressCity"`

	Notes string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	AddressStreet *string `json:"addressStreet,omitempty"`
	AddressCity   *string `json:"addressCity,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	q := h.db.Session(&gorm.Session{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("created_at DESC").
		Limit(100).
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "فشل في جلب بيانات العملاء")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "اسم العميل مطلوب")
		return
	}

	customer := models.Customer{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		AddressStreet: req.AddressStreet,
		AddressCity:   req.AddressCity,
		Notes:         req.Notes,
		IsActive:      true,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "فشل في إضافة العميل")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "تم إضافة العميل بنجاح",
		"data":    customer,
	})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "العميل غير موجود")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "العميل غير موجود")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "بيانات غير صحيحة")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.AddressStreet != nil {
		customer.AddressStreet = *req.AddressStreet
	}
	if req.AddressCity != nil {
		customer.AddressCity = *req.AddressCity
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "فشل في تحديث العميل")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "تم تحديث العميل بنجاح",
		"data":    customer,
	})
}

// SoftDelete deactivates the customer; the record stays fetchable by id.
func (h *CustomerHandler) SoftDelete(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "العميل غير موجود")
		return
	}

	customer.IsActive = false
	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "فشل في حذف العميل")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف العميل بنجاح"})
}
