package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/audit"
	domain "github.com/ebsaroptics/optical-center-api/internal/domain/booking"
	"github.com/ebsaroptics/optical-center-api/internal/dto"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/middleware"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type EmployeeBookingHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEmployeeBookingHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *EmployeeBookingHandler {
	return &EmployeeBookingHandler{
		db:    db,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EmployeeCreateBookingRequest struct {
	Username      string `json:"username" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	InterviewType string `json:"interviewType" binding:"required"`
	Notes         string `json:"notes"`
	Source        string `json:"source"`
	Status        string `json:"status"`

	AppointmentDate  *string `json:"appointmentDate"`
	AppointmentTime  *string `json:"appointmentTime"`
	AssignedEmployee *string `json:"assignedEmployee"`
}

type EmployeeUpdateBookingRequest struct {
	Username            *string `json:"username,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	InterviewType       *string `json:"interviewType,omitempty"`
	Status              *string `json:"status,omitempty"`
	AppointmentDate     *string `json:"appointmentDate,omitempty"`
	AppointmentTime     *string `json:"appointmentTime,omitempty"`
	AppointmentDuration *int    `json:"appointmentDuration,omitempty"`
	AssignedEmployee    *string `json:"assignedEmployee,omitempty"`
	Notes               *string `json:"notes,omitempty"`
	IsVisible           *bool   `json:"isVisible,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *EmployeeBookingHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if status := c.Query("status"); status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	if c.Query("includeInvisible") != "true" {
		q = q.Where("is_visible = ?", true)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseFlexibleDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "تاريخ غير صحيح")
			return
		}
		start, end := dayRange(date)
		q = q.Where("appointment_date >= ? AND appointment_date < ?", start, end)
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "حدث خطأ في جلب البيانات")
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingViews(bookings))
}

// ======================================================
// CREATE
// ======================================================

func (h *EmployeeBookingHandler) Create(c *gin.Context) {
	var req EmployeeCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "جميع الحقول مطلوبة")
		return
	}

	source := req.Source
	if source == "" {
		source = string(domain.SourceWebsite)
	}
	if !domain.IsValidSource(source) {
		httperr.BadRequest(c, "invalid_source", "مصدر الحجز غير صحيح")
		return
	}

	status := req.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}
	if !domain.IsValidStatus(status) {
		httperr.BadRequest(c, "invalid_status", "حالة الحجز غير صحيحة")
		return
	}

	if !domain.IsValidInterviewType(req.InterviewType) {
		httperr.BadRequest(c, "invalid_interview_type", "نوع الموعد غير صحيح")
		return
	}

	b := models.Booking{
		Username:         req.Username,
		Phone:            req.Phone,
		Email:            req.Email,
		InterviewType:    req.InterviewType,
		Status:           status,
		IsVisible:        true,
		Notes:            req.Notes,
		Source:           source,
		AppointmentTime:  req.AppointmentTime,
		AssignedEmployee: req.AssignedEmployee,
	}

	if req.AppointmentDate != nil && *req.AppointmentDate != "" {
		date, err := parseFlexibleDate(*req.AppointmentDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "تاريخ غير صحيح")
			return
		}
		b.AppointmentDate = &date
	}

	if err := h.db.Create(&b).Error; err != nil {
		httperr.Internal(c, "failed_to_create_booking", "حدث خطأ في إنشاء الحجز")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUsername),
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	c.JSON(http.StatusCreated, dto.NewBookingView(b))
}

// ======================================================
// GET
// ======================================================

func (h *EmployeeBookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingView(b))
}

// ======================================================
// UPDATE (any subset of fields; status writes unguarded)
// ======================================================

func (h *EmployeeBookingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	var req EmployeeUpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "بيانات غير صحيحة")
		return
	}

	if req.Username != nil {
		b.Username = *req.Username
	}
	if req.Phone != nil {
		b.Phone = *req.Phone
	}
	if req.Email != nil {
		b.Email = *req.Email
	}
	if req.InterviewType != nil {
		if !domain.IsValidInterviewType(*req.InterviewType) {
			httperr.BadRequest(c, "invalid_interview_type", "نوع الموعد غير صحيح")
			return
		}
		b.InterviewType = *req.InterviewType
	}
	if req.Status != nil {
		// Any transition is allowed, but the value itself must belong to
		// the enum.
		if !domain.IsValidStatus(*req.Status) {
			httperr.BadRequest(c, "invalid_status", "حالة الحجز غير صحيحة")
			return
		}
		b.Status = *req.Status
	}
	if req.AppointmentDate != nil {
		if *req.AppointmentDate == "" {
			b.AppointmentDate = nil
		} else {
			date, err := parseFlexibleDate(*req.AppointmentDate)
			if err != nil {
				httperr.BadRequest(c, "invalid_date", "تاريخ غير صحيح")
				return
			}
			b.AppointmentDate = &date
		}
	}
	if req.AppointmentTime != nil {
		b.AppointmentTime = req.AppointmentTime
	}
	if req.AppointmentDuration != nil {
		b.AppointmentDuration = *req.AppointmentDuration
	}
	if req.AssignedEmployee != nil {
		b.AssignedEmployee = req.AssignedEmployee
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.IsVisible != nil {
		b.IsVisible = *req.IsVisible
	}

	if err := h.db.Save(&b).Error; err != nil {
		httperr.Internal(c, "failed_to_update_booking", "حدث خطأ في تحديث الحجز")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUsername),
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	c.JSON(http.StatusOK, dto.NewBookingView(b))
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *EmployeeBookingHandler) SoftDelete(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	b.IsVisible = false
	if err := h.db.Save(&b).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "حدث خطأ في حذف الحجز")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUsername),
		Action:   "booking_hidden",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف الحجز بنجاح"})
}
