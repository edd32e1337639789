package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ebsaroptics/optical-center-api/internal/domain/booking"
	"github.com/ebsaroptics/optical-center-api/internal/httperr"
	"github.com/ebsaroptics/optical-center-api/internal/models"
	ucBooking "github.com/ebsaroptics/optical-center-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicBookingHandler serves the website booking form plus the legacy
// /booking surface the old admin page still calls. The legacy DELETE is a
// hard delete; the employee console soft-deletes instead.
type PublicBookingHandler struct {
	db       *gorm.DB
	createUC *ucBooking.CreatePublicBooking
}

func NewPublicBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreatePublicBooking,
) *PublicBookingHandler {
	return &PublicBookingHandler{
		db:       db,
		createUC: createUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicCreateBookingRequest struct {
	Username      string `json:"username"`
	Phone         string `json:"phone"`
	InterviewType string `json:"interviewType"`
}

type LegacyUpdateBookingRequest struct {
	Status          *string `json:"status,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	AppointmentTime *string `json:"appointmentTime,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	IsVisible       *bool   `json:"isVisible,omitempty"`
}

// ======================================================
// CREATE (website form)
// ======================================================

func (h *PublicBookingHandler) Create(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "جميع الحقول مطلوبة")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreatePublicBookingInput{
		Username:      req.Username,
		Phone:         req.Phone,
		InterviewType: req.InterviewType,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_fields"):
			httperr.BadRequest(c, "missing_fields", "جميع الحقول مطلوبة")
		case httperr.IsBusiness(err, "invalid_phone"):
			httperr.BadRequest(c, "invalid_phone", "رقم الهاتف غير صحيح")
		case httperr.IsBusiness(err, "invalid_interview_type"):
			httperr.BadRequest(c, "invalid_interview_type", "نوع الموعد غير صحيح")
		default:
			httperr.Internal(c, "failed_to_create_booking", "حدث خطأ في الخادم. يرجى المحاولة مرة أخرى")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "تم إرسال طلبك بنجاح! سيتواصل معك الطبيب قريباً",
		"bookingId": b.ID,
	})
}

// ======================================================
// LIST (legacy admin page)
// ======================================================

func (h *PublicBookingHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if isVisible := c.Query("isVisible"); isVisible != "" {
		q = q.Where("is_visible = ?", isVisible == "true")
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC").
		Limit(50).
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "حدث خطأ في جلب البيانات")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// LEGACY UPDATE
// ======================================================

func (h *PublicBookingHandler) LegacyUpdate(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	var req LegacyUpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "بيانات غير صحيحة")
		return
	}

	// Transitions stay unguarded: a booking may move to any state in the
	// enum, but never outside it.
	if req.Status != nil {
		if !domain.IsValidStatus(*req.Status) {
			httperr.BadRequest(c, "invalid_status", "حالة الحجز غير صحيحة")
			return
		}
		b.Status = *req.Status
	}
	if req.AppointmentDate != nil {
		date, err := parseFlexibleDate(*req.AppointmentDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "تاريخ غير صحيح")
			return
		}
		b.AppointmentDate = &date
	}
	if req.AppointmentTime != nil {
		b.AppointmentTime = req.AppointmentTime
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

	c.JSON(http.StatusOK, gin.H{
		"message": "تم تحديث الحجز بنجاح",
		"booking": b,
	})
}

// ======================================================
// LEGACY HARD DELETE
// ======================================================

func (h *PublicBookingHandler) HardDelete(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.First(&b, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "الحجز غير موجود")
		return
	}

	if err := h.db.Delete(&b).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "حدث خطأ في حذف الحجز")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف الحجز بنجاح"})
}
